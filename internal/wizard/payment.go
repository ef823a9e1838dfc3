package wizard

// PaymentMethod is a channel the activation fee can be sent through.
type PaymentMethod string

const (
	JazzCash  PaymentMethod = "JazzCash"
	EasyPaisa PaymentMethod = "EasyPaisa"
	Bank      PaymentMethod = "Bank"
)

// PaymentMethods lists the channels in display order.
func PaymentMethods() []PaymentMethod {
	return []PaymentMethod{JazzCash, EasyPaisa, Bank}
}

// Valid reports whether m is a known channel.
func (m PaymentMethod) Valid() bool {
	switch m {
	case JazzCash, EasyPaisa, Bank:
		return true
	}
	return false
}

// Payee is where the fee should be sent. BankName is empty for wallets.
type Payee struct {
	AccountTitle  string
	AccountNumber string
	BankName      string
}

// PayeeFor returns the receiving account for m.
func PayeeFor(m PaymentMethod) Payee {
	switch m {
	case Bank:
		return Payee{AccountTitle: "VidCash Inc.", AccountNumber: "0123-4567890123", BankName: "Meezan Bank"}
	default:
		return Payee{AccountTitle: "VidCash Admin", AccountNumber: "0300-1234567"}
	}
}
