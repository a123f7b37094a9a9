package config

import (
	"bytes"
	"os"
	"path/filepath"
	"text/template"

	"howett.net/stache"

	yaml "gopkg.in/yaml.v2"
)

var _ stache.ConfigurationService = &fileConfigurationService{}

type fileConfigurationService struct {
	files []string
}

// LoadConfiguration merges every configured file, in order, into a single
// Configuration. Later files override scalar values set by earlier ones.
func (fc *fileConfigurationService) LoadConfiguration() (*stache.Configuration, error) {
	var c stache.Configuration
	for _, file := range fc.files {
		err := fc.appendFileToConfiguration(&c, file)
		if err != nil {
			return nil, err
		}
	}
	return &c, nil
}

func (fc *fileConfigurationService) appendFileToConfiguration(c *stache.Configuration, filename string) error {
	tmpl, err := template.New(filepath.Base(filename)).Funcs(template.FuncMap{
		"env": func(key string) (string, error) {
			return os.Getenv(key), nil
		},
	}).ParseFiles(filename)
	if err != nil {
		return err
	}

	buf := &bytes.Buffer{}
	err = tmpl.Execute(buf, c)
	if err != nil {
		return err
	}

	err = yaml.Unmarshal(buf.Bytes(), c)
	if err != nil {
		return err
	}

	return nil
}

// NewFileConfigurationService returns a ConfigurationService that reads files
// in order, later files overriding earlier ones.
func NewFileConfigurationService(files []string) stache.ConfigurationService {
	return &fileConfigurationService{
		files: files,
	}
}
