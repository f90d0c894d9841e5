package session

type Role string

const (
	RoleClient       Role = "CLIENT"
	RoleProfessional Role = "PROFESSIONAL"
)

// Session identifica quem executa a requisição. É montada pelo middleware de
// autenticação e repassada explicitamente aos casos de uso.
type Session struct {
	UserID uint
	Role   Role
}

func (s Session) IsProfessional() bool {
	return s.Role == RoleProfessional
}

func ParseRole(v string) (Role, bool) {
	switch Role(v) {
	case RoleClient, RoleProfessional:
		return Role(v), true
	}
	return "", false
}
