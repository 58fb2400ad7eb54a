package contextkeys

// Custom type to avoid collisions with other context values.
type contextKey string

// DBContextKey is where the request-scoped *gorm.DB handle lives.
const DBContextKey = contextKey("db")
