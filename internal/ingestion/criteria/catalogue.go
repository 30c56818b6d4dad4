package criteria

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	types "github.com/evalhub/evalcycle-backend/internal/domain/review"
)

// Current criterion names. Legacy spreadsheet labels map onto these through
// the mapping table; ingestion drops any card whose name is not listed here.
const (
	OwnershipMindset   = "Sentimento de Dono"
	Resilience         = "Resiliência nas Adversidades"
	WorkOrganization   = "Organização no Trabalho"
	LearningAgility    = "Capacidade de Aprender"
	TeamPlayer         = "Team Player"
	DeliveryQuality    = "Entregar com Qualidade"
	MeetingDeadlines   = "Atender aos Prazos"
	DoingMoreWithLess  = "Fazer Mais com Menos"
	OutOfTheBox        = "Pensar Fora da Caixa"
	PeopleManagement   = "Gente"
	Results            = "Resultados"
	CompanyDevelopment = "Evolução da Empresa"
)

// Catalogue returns the fixed criterion taxonomy in seed order.
func Catalogue() []types.Criterion {
	return []types.Criterion{
		{Name: OwnershipMindset, Pillar: types.PillarBehavior},
		{Name: Resilience, Pillar: types.PillarBehavior},
		{Name: WorkOrganization, Pillar: types.PillarBehavior},
		{Name: LearningAgility, Pillar: types.PillarBehavior},
		{Name: TeamPlayer, Pillar: types.PillarBehavior},
		{Name: DeliveryQuality, Pillar: types.PillarExecution},
		{Name: MeetingDeadlines, Pillar: types.PillarExecution},
		{Name: DoingMoreWithLess, Pillar: types.PillarExecution},
		{Name: OutOfTheBox, Pillar: types.PillarExecution},
		{Name: PeopleManagement, Pillar: types.PillarManagement},
		{Name: Results, Pillar: types.PillarManagement},
		{Name: CompanyDevelopment, Pillar: types.PillarManagement},
	}
}

// Seed inserts the catalogue idempotently; existing rows are left untouched
// because the catalogue is immutable during ingestion.
func Seed(ctx context.Context, db *gorm.DB) error {
	rows := Catalogue()
	for i := range rows {
		rows[i].ID = uuid.New()
	}
	return db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "name"}},
		DoNothing: true,
	}).Create(&rows).Error
}
