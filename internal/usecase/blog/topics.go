package blog

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Topic is one entry in the worker's topic rotation.
type Topic struct {
	Title    string `yaml:"title"`
	Audience string `yaml:"audience"`
	Angle    string `yaml:"angle"`
}

// topicsFile is the on-disk shape of the rotation config.
type topicsFile struct {
	Topics []Topic `yaml:"topics"`
}

// LoadTopics reads the topic rotation from a YAML file.
// An empty rotation is an error; the scheduled job has nothing to write about.
func LoadTopics(path string) ([]Topic, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read topics file: %w", err)
	}

	var parsed topicsFile
	if err := yaml.Unmarshal(data, &parsed); err != nil {
		return nil, fmt.Errorf("parse topics file %s: %w", path, err)
	}

	if len(parsed.Topics) == 0 {
		return nil, fmt.Errorf("topics file %s contains no topics", path)
	}
	for i, topic := range parsed.Topics {
		if topic.Title == "" {
			return nil, fmt.Errorf("topics file %s: topic %d has no title", path, i)
		}
	}
	return parsed.Topics, nil
}
