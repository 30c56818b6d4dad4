package pipeline

// Sheet names and column canon used by the historical exports. Column lookup
// goes through sheet.HeaderContains, so only the canonical substring matters;
// accents, casing and surrounding words in the real headers do not.
const (
	SheetProfile    = "Perfil"
	SheetSelf       = "Autoavaliação"
	SheetPeer       = "Avaliação 360"
	SheetReferences = "Pesquisa de Referências"
)

const (
	colEmail = "email"
	colName  = "nome"
	colUnit  = "unidade"
	colCycle = "ciclo"

	colCriterion     = "critério"
	colSelfScore     = "auto-avaliação"
	colJustification = "justificativa"

	colEvaluatedEmail = "email do avaliado"
	colProject        = "projeto"
	colPeriod         = "período"
	colOverallScore   = "nota geral"
	colStrengths      = "pontos fortes"
	colToImprove      = "pontos de melhoria"
	colWorkAgain      = "trabalharia novamente"

	colReferenceEmail = "email da referência"
)

// Identity given to collaborators that exist only because another row
// referenced their email. A later authoritative profile row overwrites it;
// nothing else ever does.
const (
	placeholderFullName = "Colaborador não identificado"
	placeholderUnit     = "Não informado"
)

// Stored instead of an empty string when every contributing free-text value
// in a peer group is empty.
const emptyTextFallback = "Sem comentários registrados."

// Imported cycles are historical: the date range and phase durations are
// policy constants keyed off the year parsed from the cycle name.
const (
	defaultCycleYear   = 2023
	phaseDurationsJSON = `{"inProgress":30,"review":15,"equalization":15}`
)
