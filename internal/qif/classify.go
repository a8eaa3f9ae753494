package qif

import "github.com/noobping/ing2qif/internal/model"

// categories maps transaction kinds to QIF categories. Matching is
// exact and case-sensitive; kinds not listed get no category.
var categories = map[model.TransactionKind]model.Category{
	model.KindGeldautomaat:      model.CategoryATM,
	model.KindBetaalautomaat:    model.CategoryATM,
	model.KindInternetbankieren: model.CategoryTransfer,
	model.KindIncasso:           model.CategoryTransfer,
	model.KindVerzamelbetaling:  model.CategoryTransfer,
	model.KindStorting:          model.CategoryDeposit,
}

// Classify returns the QIF category for a transaction kind, or
// model.CategoryNone for unmapped kinds. There is no failure path;
// absence is a valid outcome.
func Classify(kind model.TransactionKind) model.Category {
	return categories[kind]
}
