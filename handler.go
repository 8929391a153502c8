package barcodegen

// BarGroup classifies a run of bars emitted by an encoder. Handlers use it to
// attribute geometry to the semantic parts of a symbol.
type BarGroup int

const (
	GroupStartCharacter BarGroup = iota
	GroupMessageCharacter
	GroupChecksumCharacter
	GroupStopCharacter
	GroupUPCEANGuard
	GroupUPCEANLead
	GroupUPCEANGroup
	GroupUPCEANCheck
	GroupUPCEANSupplemental
	GroupRowIndicator
)

func (g BarGroup) String() string {
	switch g {
	case GroupStartCharacter:
		return "start-char"
	case GroupMessageCharacter:
		return "msg-char"
	case GroupChecksumCharacter:
		return "check-char"
	case GroupStopCharacter:
		return "stop-char"
	case GroupUPCEANGuard:
		return "upc-ean-guard"
	case GroupUPCEANLead:
		return "upc-ean-lead"
	case GroupUPCEANGroup:
		return "upc-ean-group"
	case GroupUPCEANCheck:
		return "upc-ean-check"
	case GroupUPCEANSupplemental:
		return "upc-ean-supp"
	case GroupRowIndicator:
		return "row-indicator"
	default:
		return "unknown"
	}
}

// Codeword is a single symbol character of a stacked symbology together with
// the cluster (row pattern table) it is drawn from.
type Codeword struct {
	Value   int
	Cluster int
}

// ClassicHandler receives the event stream of a symbol.
//
// StartBarcode is called exactly once and first, EndBarcode exactly once and
// last. Bar groups nest at most one level. Widths are logical module counts
// that the handler scales by the configured module width.
type ClassicHandler interface {
	StartBarcode(msg, formattedMsg string)
	StartRow()
	StartBarGroup(group BarGroup, submsg string)
	AddBar(black bool, width int)
	EndBarGroup()
	EndRow()
	EndBarcode()
}

// TwoDimHandler extends ClassicHandler with codeword events for stacked
// symbologies.
type TwoDimHandler interface {
	ClassicHandler
	AddCodeword(cw Codeword)
}
