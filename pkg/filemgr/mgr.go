package filemgr

import (
	"encoding/json"
	"os"
	"path"

	"github.com/ErikJBerg/NL2SQLEval/pkg/report"
	"github.com/ErikJBerg/NL2SQLEval/pkg/util"
	"github.com/pingcap/errors"
)

const (
	recordsFilename = "records.json"
	reportFilename  = "report.txt"
)

// Manager owns a folder and organizes the artifacts of one evaluation run.
type Manager struct {
	workDir string
}

// NewManager creates a new Manager instance on the given work directory.
func NewManager(workDir string) *Manager {
	return &Manager{workDir: workDir}
}

// WriteRecords writes the full record set as JSON.
func (m *Manager) WriteRecords(records []report.Record) error {
	if err := os.MkdirAll(m.workDir, 0776); err != nil {
		return errors.Trace(err)
	}
	content, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return errors.Trace(err)
	}
	return util.AtomicWrite(path.Join(m.workDir, recordsFilename), content)
}

// WriteTextReport writes the rendered text report.
func (m *Manager) WriteTextReport(content []byte) error {
	if err := os.MkdirAll(m.workDir, 0776); err != nil {
		return errors.Trace(err)
	}
	return util.AtomicWrite(path.Join(m.workDir, reportFilename), content)
}

// GetRecordsPath returns the path of the records file.
func (m *Manager) GetRecordsPath() string {
	return path.Join(m.workDir, recordsFilename)
}
