package querygen

import (
	"bytes"

	"github.com/vektah/gqlparser/v2/ast"
	"github.com/vektah/gqlparser/v2/formatter"

	"github.com/Yamashou/gqlbind/queryparser"
)

// operationDocument renders the operation together with every fragment it
// uses, so that the string can be sent to a server as is.
func operationDocument(doc *ast.QueryDocument, operation *ast.OperationDefinition) string {
	single := &ast.QueryDocument{
		Operations: ast.OperationList{operation},
	}
	for _, name := range queryparser.FragmentsUsedBy(doc, operation) {
		if fragment := doc.Fragments.ForName(name); fragment != nil {
			single.Fragments = append(single.Fragments, fragment)
		}
	}

	var buf bytes.Buffer
	formatter.NewFormatter(&buf).FormatQueryDocument(single)

	return buf.String()
}
