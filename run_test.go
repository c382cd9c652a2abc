package main

import (
	"context"
	"go/ast"
	"go/parser"
	"go/token"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/go-json-experiment/json"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Yamashou/gqlbind/testdata/integration/basic/domain"
	"github.com/Yamashou/gqlbind/testdata/integration/basic/gen"
)

func Test_IntegrationTest(t *testing.T) {
	type want struct {
		query  []string
		models []string
	}

	tests := []struct {
		name    string
		testDir string
		wantErr bool
		want    want
	}{
		{
			name:    "basic test",
			testDir: "testdata/integration/basic/",
			want: want{
				query: []string{
					`UserOperationOperationName = "UserOperation"`,
					"type UserOperationVariables struct { ID string `json:\"id\"` }",
					"type UserOperation_User struct { Email domain.Email `json:\"email\"` Tags []string `json:\"tags\"` OptionalTags *[]string `json:\"optionalTags\"` Profile *UserOperation_User_Profile `json:\"profile\"` UserSummary UserSummary `json:\"-\"` }",
					"type UserOperation_User_Profile_Avatar struct { URL string `json:\"url\"` }",
					"type UpdateProfileVariables struct { Input ProfileInput `json:\"input\"` }",
					"type NodeOperation_Node struct { Typename string `json:\"__typename\"` ID string `json:\"id\"` OnBot *NodeOperation_Node_OnBot `json:\"-\"` UserSummary *UserSummary `json:\"-\"` }",
					`switch t.Typename { case "Bot":`,
					"type NodeOperation_Node_OnBot_Owner struct { UserSummary UserSummary `json:\"-\"` }",
					"//gqlbind:derive Deserialize,PartialEq type UserSummary struct { ID string `json:\"id\"` Name string `json:\"name\"` Role Role `json:\"role\"` }",
					`"github.com/Yamashou/gqlbind/testdata/integration/basic/domain"`,
				},
				models: []string{
					"//gqlbind:derive PartialEq type Role string",
					`RoleMember Role = "MEMBER"`,
					"//gqlbind:derive Serialize,PartialEq type ProfileInput struct { Bio *string `json:\"bio,omitzero\"` Contact *domain.Email `json:\"contact,omitzero\"` }",
				},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := t.TempDir()
			t.Setenv("GQLBIND_OUT", out)

			err := run(context.Background(), filepath.Join(tt.testDir, ".gqlbind.yml"))
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)

			query := readGoFile(t, filepath.Join(out, "query_gen.go"))
			for _, want := range tt.want.query {
				assert.Contains(t, query, want)
			}

			models := readGoFile(t, filepath.Join(out, "models_gen.go"))
			for _, want := range tt.want.models {
				assert.Contains(t, models, want)
			}

			// チェックインしている生成済みパッケージと同じ型が生成される
			for _, name := range declaredTypes(t, filepath.Join(tt.testDir, "gen", "query_gen.go")) {
				assert.Contains(t, query, "type "+name+" ", name)
			}
			for _, name := range declaredTypes(t, filepath.Join(tt.testDir, "gen", "models_gen.go")) {
				assert.Contains(t, models, "type "+name+" ", name)
			}
		})
	}
}

func Test_GeneratedCodeDecodesResponses(t *testing.T) {
	t.Parallel()

	t.Run("interfaceの型条件とフラグメントを振り分ける", func(t *testing.T) {
		t.Parallel()

		tests := []struct {
			name     string
			response string
			want     *gen.NodeOperationResponse
		}{
			{
				name:     "Botの場合はOnBotとその中のフラグメントが埋まる",
				response: `{"node":{"__typename":"Bot","id":"bot-1","name":"R2-D2","owner":{"id":"user-1","name":"Luke","role":"ADMIN"}}}`,
				want: &gen.NodeOperationResponse{
					Node: &gen.NodeOperation_Node{
						Typename: "Bot",
						ID:       "bot-1",
						OnBot: &gen.NodeOperation_Node_OnBot{
							Name: "R2-D2",
							Owner: &gen.NodeOperation_Node_OnBot_Owner{
								UserSummary: gen.UserSummary{ID: "user-1", Name: "Luke", Role: gen.RoleAdmin},
							},
						},
					},
				},
			},
			{
				name:     "Userの場合はフラグメントが埋まる",
				response: `{"node":{"__typename":"User","id":"user-1","name":"Luke","role":"MEMBER"}}`,
				want: &gen.NodeOperationResponse{
					Node: &gen.NodeOperation_Node{
						Typename:    "User",
						ID:          "user-1",
						UserSummary: &gen.UserSummary{ID: "user-1", Name: "Luke", Role: gen.RoleMember},
					},
				},
			},
			{
				name:     "nullの場合はnil",
				response: `{"node":null}`,
				want:     &gen.NodeOperationResponse{},
			},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				t.Parallel()

				var got gen.NodeOperationResponse
				require.NoError(t, json.Unmarshal([]byte(tt.response), &got))

				if diff := cmp.Diff(tt.want, &got); diff != "" {
					t.Errorf("decoded response diff(-want +got): %s", diff)
				}
			})
		}
	})

	t.Run("カスタムスカラーと同じ型のフラグメントを埋める", func(t *testing.T) {
		t.Parallel()

		response := `{"user":{"id":"user-1","name":"Luke","role":"ADMIN","email":"luke@Example.COM","tags":["jedi"],"optionalTags":null,"profile":{"bio":null,"avatar":{"url":"https://example.com/a.png"}}}}`

		var got gen.UserOperationResponse
		require.NoError(t, json.Unmarshal([]byte(response), &got))

		want := &gen.UserOperationResponse{
			User: &gen.UserOperation_User{
				Email: domain.Email("luke@example.com"),
				Tags:  []string{"jedi"},
				Profile: &gen.UserOperation_User_Profile{
					Avatar: &gen.UserOperation_User_Profile_Avatar{URL: "https://example.com/a.png"},
				},
				UserSummary: gen.UserSummary{ID: "user-1", Name: "Luke", Role: gen.RoleAdmin},
			},
		}
		if diff := cmp.Diff(want, &got); diff != "" {
			t.Errorf("decoded response diff(-want +got): %s", diff)
		}

		assert.Equal(t, "example.com", got.GetUser().GetEmail().Domain())
		assert.Equal(t, "Luke", got.GetUser().GetUserSummary().Name)
	})

	t.Run("不正なカスタムスカラーはエラー", func(t *testing.T) {
		t.Parallel()

		var got gen.UserOperationResponse
		err := json.Unmarshal([]byte(`{"user":{"id":"user-1","name":"Luke","role":"ADMIN","email":"luke","tags":[]}}`), &got)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid email format")
	})

	t.Run("nilでもgetterはゼロ値を返す", func(t *testing.T) {
		t.Parallel()

		var resp *gen.NodeOperationResponse
		assert.Nil(t, resp.GetNode().GetOnBot().GetOwner())
		assert.Empty(t, resp.GetNode().GetOnBot().GetOwner().GetUserSummary().Name)
		assert.Nil(t, resp.GetNode().GetUserSummary())
	})

	t.Run("変数はnilのときだけ省略される", func(t *testing.T) {
		t.Parallel()

		empty := ""
		vars := gen.UpdateProfileVariables{Input: gen.ProfileInput{Bio: &empty}}

		got, err := json.Marshal(vars)
		require.NoError(t, err)
		assert.JSONEq(t, `{"input":{"bio":""}}`, string(got))
	})
}

func Test_RunConfigNotFound(t *testing.T) {
	t.Parallel()

	err := run(context.Background(), "testdata/doesnotexist.yml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to load config file")
}

func readGoFile(t *testing.T, filename string) string {
	t.Helper()

	content, err := os.ReadFile(filename)
	require.NoError(t, err)

	_, err = parser.ParseFile(token.NewFileSet(), filename, content, 0)
	require.NoError(t, err)

	return strings.Join(strings.Fields(string(content)), " ")
}

// declaredTypes lists the type names declared in a Go source file.
func declaredTypes(t *testing.T, filename string) []string {
	t.Helper()

	f, err := parser.ParseFile(token.NewFileSet(), filename, nil, 0)
	require.NoError(t, err)

	var names []string
	for _, decl := range f.Decls {
		genDecl, ok := decl.(*ast.GenDecl)
		if !ok || genDecl.Tok != token.TYPE {
			continue
		}
		for _, spec := range genDecl.Specs {
			names = append(names, spec.(*ast.TypeSpec).Name.Name)
		}
	}
	require.NotEmpty(t, names)
	return names
}
