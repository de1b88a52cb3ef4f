package domain

// Principal é o usuário extraído do bearer token
type Principal struct {
	UserID string `json:"user_id"`
	Email  string `json:"email"`
}

// DemoPrincipal é usado quando o token não é um JWT
var DemoPrincipal = Principal{UserID: "demo-user", Email: "demo@example.com"}
