package gen

import (
	"github.com/go-json-experiment/json"

	"github.com/Yamashou/gqlbind/testdata/integration/basic/domain"
)

const (
	NodeOperationOperationName = "NodeOperation"
	NodeOperationDocument      = "query NodeOperation ($id: ID!) {\n\tnode(id: $id) {\n\t\t__typename\n\t\tid\n\t\t... on Bot {\n\t\t\tname\n\t\t\towner {\n\t\t\t\t... UserSummary\n\t\t\t}\n\t\t}\n\t\t... UserSummary\n\t}\n}\nfragment UserSummary on User {\n\tid\n\tname\n\trole\n}\n"
)

//gqlbind:derive Serialize,PartialEq
type NodeOperationVariables struct {
	ID string `json:"id"`
}

//gqlbind:derive Deserialize,PartialEq
type NodeOperationResponse struct {
	Node *NodeOperation_Node `json:"node"`
}

func (t *NodeOperationResponse) GetNode() *NodeOperation_Node {
	if t == nil {
		t = &NodeOperationResponse{}
	}
	return t.Node
}

//gqlbind:derive Deserialize,PartialEq
type NodeOperation_Node struct {
	Typename    string                    `json:"__typename"`
	ID          string                    `json:"id"`
	OnBot       *NodeOperation_Node_OnBot `json:"-"`
	UserSummary *UserSummary              `json:"-"`
}

func (t *NodeOperation_Node) UnmarshalJSON(data []byte) error {
	type alias NodeOperation_Node
	if err := json.Unmarshal(data, (*alias)(t)); err != nil {
		return err
	}
	switch t.Typename {
	case "Bot":
		t.OnBot = new(NodeOperation_Node_OnBot)
		if err := json.Unmarshal(data, t.OnBot); err != nil {
			return err
		}
	case "User":
		t.UserSummary = new(UserSummary)
		if err := json.Unmarshal(data, t.UserSummary); err != nil {
			return err
		}
	}
	return nil
}

func (t *NodeOperation_Node) GetTypename() string {
	if t == nil {
		t = &NodeOperation_Node{}
	}
	return t.Typename
}

func (t *NodeOperation_Node) GetID() string {
	if t == nil {
		t = &NodeOperation_Node{}
	}
	return t.ID
}

func (t *NodeOperation_Node) GetOnBot() *NodeOperation_Node_OnBot {
	if t == nil {
		t = &NodeOperation_Node{}
	}
	return t.OnBot
}

func (t *NodeOperation_Node) GetUserSummary() *UserSummary {
	if t == nil {
		t = &NodeOperation_Node{}
	}
	return t.UserSummary
}

//gqlbind:derive Deserialize,PartialEq
type NodeOperation_Node_OnBot struct {
	Name  string                          `json:"name"`
	Owner *NodeOperation_Node_OnBot_Owner `json:"owner"`
}

func (t *NodeOperation_Node_OnBot) GetName() string {
	if t == nil {
		t = &NodeOperation_Node_OnBot{}
	}
	return t.Name
}

func (t *NodeOperation_Node_OnBot) GetOwner() *NodeOperation_Node_OnBot_Owner {
	if t == nil {
		t = &NodeOperation_Node_OnBot{}
	}
	return t.Owner
}

//gqlbind:derive Deserialize,PartialEq
type NodeOperation_Node_OnBot_Owner struct {
	UserSummary UserSummary `json:"-"`
}

func (t *NodeOperation_Node_OnBot_Owner) UnmarshalJSON(data []byte) error {
	type alias NodeOperation_Node_OnBot_Owner
	if err := json.Unmarshal(data, (*alias)(t)); err != nil {
		return err
	}
	if err := json.Unmarshal(data, &t.UserSummary); err != nil {
		return err
	}
	return nil
}

func (t *NodeOperation_Node_OnBot_Owner) GetUserSummary() UserSummary {
	if t == nil {
		t = &NodeOperation_Node_OnBot_Owner{}
	}
	return t.UserSummary
}

const (
	UserOperationOperationName = "UserOperation"
	UserOperationDocument      = "query UserOperation ($id: ID!) {\n\tuser(id: $id) {\n\t\t... UserSummary\n\t\temail\n\t\ttags\n\t\toptionalTags\n\t\tprofile {\n\t\t\tbio\n\t\t\tavatar {\n\t\t\t\turl\n\t\t\t}\n\t\t}\n\t}\n}\nfragment UserSummary on User {\n\tid\n\tname\n\trole\n}\n"
)

//gqlbind:derive Serialize,PartialEq
type UserOperationVariables struct {
	ID string `json:"id"`
}

//gqlbind:derive Deserialize,PartialEq
type UserOperationResponse struct {
	User *UserOperation_User `json:"user"`
}

func (t *UserOperationResponse) GetUser() *UserOperation_User {
	if t == nil {
		t = &UserOperationResponse{}
	}
	return t.User
}

//gqlbind:derive Deserialize,PartialEq
type UserOperation_User struct {
	Email        domain.Email                `json:"email"`
	Tags         []string                    `json:"tags"`
	OptionalTags *[]string                   `json:"optionalTags"`
	Profile      *UserOperation_User_Profile `json:"profile"`
	UserSummary  UserSummary                 `json:"-"`
}

func (t *UserOperation_User) UnmarshalJSON(data []byte) error {
	type alias UserOperation_User
	if err := json.Unmarshal(data, (*alias)(t)); err != nil {
		return err
	}
	if err := json.Unmarshal(data, &t.UserSummary); err != nil {
		return err
	}
	return nil
}

func (t *UserOperation_User) GetEmail() domain.Email {
	if t == nil {
		t = &UserOperation_User{}
	}
	return t.Email
}

func (t *UserOperation_User) GetTags() []string {
	if t == nil {
		t = &UserOperation_User{}
	}
	return t.Tags
}

func (t *UserOperation_User) GetOptionalTags() *[]string {
	if t == nil {
		t = &UserOperation_User{}
	}
	return t.OptionalTags
}

func (t *UserOperation_User) GetProfile() *UserOperation_User_Profile {
	if t == nil {
		t = &UserOperation_User{}
	}
	return t.Profile
}

func (t *UserOperation_User) GetUserSummary() UserSummary {
	if t == nil {
		t = &UserOperation_User{}
	}
	return t.UserSummary
}

//gqlbind:derive Deserialize,PartialEq
type UserOperation_User_Profile struct {
	Bio    *string                            `json:"bio"`
	Avatar *UserOperation_User_Profile_Avatar `json:"avatar"`
}

func (t *UserOperation_User_Profile) GetBio() *string {
	if t == nil {
		t = &UserOperation_User_Profile{}
	}
	return t.Bio
}

func (t *UserOperation_User_Profile) GetAvatar() *UserOperation_User_Profile_Avatar {
	if t == nil {
		t = &UserOperation_User_Profile{}
	}
	return t.Avatar
}

//gqlbind:derive Deserialize,PartialEq
type UserOperation_User_Profile_Avatar struct {
	URL string `json:"url"`
}

func (t *UserOperation_User_Profile_Avatar) GetURL() string {
	if t == nil {
		t = &UserOperation_User_Profile_Avatar{}
	}
	return t.URL
}

const (
	UpdateProfileOperationName = "UpdateProfile"
	UpdateProfileDocument      = "mutation UpdateProfile ($input: ProfileInput!) {\n\tupdateProfile(input: $input) {\n\t\t... UserSummary\n\t}\n}\nfragment UserSummary on User {\n\tid\n\tname\n\trole\n}\n"
)

//gqlbind:derive Serialize,PartialEq
type UpdateProfileVariables struct {
	Input ProfileInput `json:"input"`
}

//gqlbind:derive Deserialize,PartialEq
type UpdateProfileResponse struct {
	UpdateProfile UpdateProfile_UpdateProfile `json:"updateProfile"`
}

func (t *UpdateProfileResponse) GetUpdateProfile() UpdateProfile_UpdateProfile {
	if t == nil {
		t = &UpdateProfileResponse{}
	}
	return t.UpdateProfile
}

//gqlbind:derive Deserialize,PartialEq
type UpdateProfile_UpdateProfile struct {
	UserSummary UserSummary `json:"-"`
}

func (t *UpdateProfile_UpdateProfile) UnmarshalJSON(data []byte) error {
	type alias UpdateProfile_UpdateProfile
	if err := json.Unmarshal(data, (*alias)(t)); err != nil {
		return err
	}
	if err := json.Unmarshal(data, &t.UserSummary); err != nil {
		return err
	}
	return nil
}

func (t *UpdateProfile_UpdateProfile) GetUserSummary() UserSummary {
	if t == nil {
		t = &UpdateProfile_UpdateProfile{}
	}
	return t.UserSummary
}

//gqlbind:derive Deserialize,PartialEq
type UserSummary struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Role Role   `json:"role"`
}

func (t *UserSummary) GetID() string {
	if t == nil {
		t = &UserSummary{}
	}
	return t.ID
}

func (t *UserSummary) GetName() string {
	if t == nil {
		t = &UserSummary{}
	}
	return t.Name
}

func (t *UserSummary) GetRole() Role {
	if t == nil {
		t = &UserSummary{}
	}
	return t.Role
}
