package eval

import (
	"os"
	"path/filepath"

	"github.com/ErikJBerg/NL2SQLEval/pkg/db"
)

// Config is a static struct for the evaluator's configuration.
type Config struct {
	ExpectedFile  string
	GeneratedFile string

	DB db.Config

	IgnoreRowOrder    bool
	IgnoreColumnOrder bool
	Optimize          bool

	HTMLReport string
	WorkDir    string
	Log        Log
}

type Log struct {
	Filename string
}

const defaultWorkSubDir = "nl2sqleval"

func (c *Config) ensureDefaults() {
	if c.WorkDir == "" {
		c.WorkDir = filepath.Join(os.TempDir(), defaultWorkSubDir)
	}
}
