package model

// TransactionKind is the raw classification code from the statement's
// kind column ("MutatieSoort"). Only the known values below drive
// special-case memo handling; any other value gets default handling.
type TransactionKind string

const (
	KindDiversen          TransactionKind = "Diversen"
	KindBetaalautomaat    TransactionKind = "Betaalautomaat"
	KindGeldautomaat      TransactionKind = "Geldautomaat"
	KindIncasso           TransactionKind = "Incasso"
	KindInternetbankieren TransactionKind = "Internetbankieren"
	KindOverschrijving    TransactionKind = "Overschrijving"
	KindVerzamelbetaling  TransactionKind = "Verzamelbetaling"
	KindStorting          TransactionKind = "Storting"
)

// Category is the QIF entry category derived from a TransactionKind.
// CategoryNone means no N line is emitted.
type Category string

const (
	CategoryATM      Category = "ATM"
	CategoryTransfer Category = "Transfer"
	CategoryDeposit  Category = "Deposit"
	CategoryNone     Category = ""
)
