package wland

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// recordFile is the on-disk shape of a record list.
type recordFile struct {
	Records []Record `yaml:"records"`
}

// LoadRecords reads a YAML record list:
//
//	records:
//	  - author_uid: 42
//	    author_name: somebody
//	    wid: 7
//	    title: A Title
//	    origins: [x, y]
//	    tags: [t1]
func LoadRecords(path string) ([]Record, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read records: %w", err)
	}
	var rf recordFile
	if err := yaml.Unmarshal(data, &rf); err != nil {
		return nil, fmt.Errorf("parse records: %w", err)
	}
	return rf.Records, nil
}
