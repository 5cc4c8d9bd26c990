package domain

import "github.com/golang-jwt/jwt/v5"

// Claims são as credenciais emitidas pela plataforma de gestão. O serviço
// de analytics apenas valida o token; o ciclo de vida de usuários e sessões
// pertence à aplicação principal.
type Claims struct {
	UserID     int64  `json:"user_id"`
	UserRoleID int    `json:"user_role_id"`
	Name       string `json:"name"`
	jwt.RegisteredClaims
}
