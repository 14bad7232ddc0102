package sqlcmp

import (
	"strings"

	"github.com/ErikJBerg/NL2SQLEval/pkg/util"
	"github.com/pingcap/errors"
	"github.com/pingcap/tidb/pkg/parser"
	"github.com/pingcap/tidb/pkg/parser/ast"
	"github.com/pingcap/tidb/pkg/parser/format"
	_ "github.com/pingcap/tidb/pkg/parser/test_driver"
)

// parseQuery parses one statement under the MySQL dialect.
func parseQuery(query string) (ast.StmtNode, error) {
	p := util.ParserPool.Get().(*parser.Parser)
	stmt, err := p.ParseOneStmt(query, "", "")
	util.ParserPool.Put(p)
	if err != nil {
		return nil, errors.Annotatef(err, "failed to parse query: %s", query)
	}
	return stmt, nil
}

// restoreNode renders an AST node back to SQL text.
func restoreNode(node ast.Node) (string, error) {
	var sb strings.Builder
	ctx := format.NewRestoreCtx(format.DefaultRestoreFlags, &sb)
	if err := node.Restore(ctx); err != nil {
		return "", errors.Trace(err)
	}
	return sb.String(), nil
}
