package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/greenledger/carbon-report-go/internal/domain/entity"
	"github.com/greenledger/carbon-report-go/internal/domain/repository"
	"github.com/greenledger/carbon-report-go/internal/shared/types"
	"github.com/pelletier/go-toml"
	"gopkg.in/yaml.v3"
)

// ConfigRepositoryImpl implementa o ConfigRepository.
type ConfigRepositoryImpl struct{}

// NewConfigRepository cria uma nova implementação do ConfigRepository.
func NewConfigRepository() repository.ConfigRepository {
	return &ConfigRepositoryImpl{}
}

// LoadConfigFile carrega um arquivo de configuração TOML, YAML ou JSON.
func (r *ConfigRepositoryImpl) LoadConfigFile(filePath string) (*types.Config, error) {
	var config types.Config
	if err := decodeFile(filePath, &config); err != nil {
		return nil, err
	}
	return &config, nil
}

// LoadReportInput carrega o arquivo de entrada do relatório (dados de
// emissões, estratégias, organização, cenários e usuário). Seções ausentes
// ficam com zero values — o pipeline tolera entradas degradadas.
func (r *ConfigRepositoryImpl) LoadReportInput(filePath string) (*entity.ReportInput, error) {
	var input entity.ReportInput
	if err := decodeFile(filePath, &input); err != nil {
		return nil, err
	}
	return &input, nil
}

// decodeFile decide o decoder pela extensão do arquivo.
func decodeFile(filePath string, out interface{}) error {
	fileExtension := strings.ToLower(filepath.Ext(filePath))

	// Verifica se o arquivo existe
	fileInfo, err := os.Stat(filePath)
	if err != nil {
		return fmt.Errorf("error accessing input file: %w", err)
	}
	if fileInfo.IsDir() {
		return fmt.Errorf("%s is a directory, not a file", filePath)
	}

	fileData, err := os.ReadFile(filePath)
	if err != nil {
		return fmt.Errorf("error reading input file: %w", err)
	}

	switch fileExtension {
	case ".toml":
		if err := toml.Unmarshal(fileData, out); err != nil {
			return fmt.Errorf("error parsing TOML file: %w", err)
		}
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(fileData, out); err != nil {
			return fmt.Errorf("error parsing YAML file: %w", err)
		}
	case ".json":
		if err := json.Unmarshal(fileData, out); err != nil {
			return fmt.Errorf("error parsing JSON file: %w", err)
		}
	default:
		return fmt.Errorf("unsupported input file format: %s", fileExtension)
	}

	return nil
}
