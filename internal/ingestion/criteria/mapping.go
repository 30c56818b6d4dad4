package criteria

import (
	"embed"
	"fmt"
	"os"
	"strings"
	"sync"

	"gopkg.in/yaml.v3"

	"github.com/evalhub/evalcycle-backend/internal/ingestion/sheet"
	"github.com/evalhub/evalcycle-backend/internal/platform/logger"
)

const mappingEnv = "CRITERIA_MAPPING_YAML"

//go:embed criteria_mapping.yaml
var mappingFS embed.FS

// Mapping translates legacy criterion labels to current catalogue names.
// Keys are held in normalized form so spreadsheet spelling variations (case,
// accents, stray whitespace) still hit.
type Mapping struct {
	byLegacy map[string]string
}

// NewMapping builds a Mapping from raw legacy→current pairs.
func NewMapping(pairs map[string]string) Mapping {
	byLegacy := make(map[string]string, len(pairs))
	for legacy, current := range pairs {
		byLegacy[sheet.Normalize(legacy)] = current
	}
	return Mapping{byLegacy: byLegacy}
}

// Remap translates one legacy label. A miss is a soft failure: the caller
// logs and skips the row.
func (m Mapping) Remap(legacy string) (string, bool) {
	current, ok := m.byLegacy[sheet.Normalize(legacy)]
	return current, ok
}

func (m Mapping) Len() int { return len(m.byLegacy) }

// DefaultMapping is the compiled-in legacy table: ~18 labels observed across
// historical exports, several-to-one onto the current catalogue.
func DefaultMapping() Mapping {
	return NewMapping(map[string]string{
		"Sentimento de Dono":           OwnershipMindset,
		"Resiliencia nas adversidades": Resilience,
		"Organização":                  WorkOrganization,
		"Organização no trabalho":      WorkOrganization,
		"Capacidade de aprender":       LearningAgility,
		"Team Player":                  TeamPlayer,
		"Ser team player":              TeamPlayer,
		"Entregar com qualidade":       DeliveryQuality,
		"Qualidade":                    DeliveryQuality,
		"Atender aos prazos":           MeetingDeadlines,
		"Pontualidade nas entregas":    MeetingDeadlines,
		"Fazer mais com menos":         DoingMoreWithLess,
		"Produtividade":                DoingMoreWithLess,
		"Pensar fora da caixa":         OutOfTheBox,
		"Inovação":                     OutOfTheBox,
		"Gente":                        PeopleManagement,
		"Gestão de pessoas":            PeopleManagement,
		"Resultados":                   Results,
		"Evolução da empresa":          CompanyDevelopment,
	})
}

type mappingSpec struct {
	Legacy map[string]string `yaml:"legacy"`
}

var (
	loadOnce   sync.Once
	loadedMap  Mapping
	loadedFrom string
)

// Load resolves the mapping once per process: an operator-provided YAML path
// (CRITERIA_MAPPING_YAML) wins, then the embedded policy file, then the
// compiled-in table. A broken override degrades with a warning instead of
// failing the run.
func Load(log *logger.Logger) Mapping {
	loadOnce.Do(func() {
		loadedMap, loadedFrom = loadMapping(log)
		log.Info("criteria mapping loaded", "source", loadedFrom, "entries", loadedMap.Len())
	})
	return loadedMap
}

func loadMapping(log *logger.Logger) (Mapping, string) {
	if path := strings.TrimSpace(os.Getenv(mappingEnv)); path != "" {
		m, err := parseMappingFile(os.ReadFile, path)
		if err == nil {
			return m, path
		}
		log.Warn("criteria mapping override unusable, falling back", "path", path, "error", err)
	}

	if raw, err := mappingFS.ReadFile("criteria_mapping.yaml"); err == nil {
		if m, err := parseMapping(raw); err == nil {
			return m, "embedded"
		} else {
			log.Warn("embedded criteria mapping unusable, falling back", "error", err)
		}
	}

	return DefaultMapping(), "builtin"
}

func parseMappingFile(read func(string) ([]byte, error), path string) (Mapping, error) {
	raw, err := read(path)
	if err != nil {
		return Mapping{}, err
	}
	return parseMapping(raw)
}

func parseMapping(raw []byte) (Mapping, error) {
	var spec mappingSpec
	if err := yaml.Unmarshal(raw, &spec); err != nil {
		return Mapping{}, fmt.Errorf("parse criteria mapping yaml: %w", err)
	}
	if len(spec.Legacy) == 0 {
		return Mapping{}, fmt.Errorf("criteria mapping yaml has no legacy entries")
	}
	return NewMapping(spec.Legacy), nil
}
