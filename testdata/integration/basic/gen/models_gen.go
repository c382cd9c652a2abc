package gen

import (
	"github.com/Yamashou/gqlbind/testdata/integration/basic/domain"
)

//gqlbind:derive PartialEq
type Role string

const (
	RoleAdmin  Role = "ADMIN"
	RoleMember Role = "MEMBER"
)

func (e Role) IsValid() bool {
	switch e {
	case RoleAdmin, RoleMember:
		return true
	}
	return false
}

//gqlbind:derive Serialize,PartialEq
type ProfileInput struct {
	Bio     *string       `json:"bio,omitzero"`
	Contact *domain.Email `json:"contact,omitzero"`
}
