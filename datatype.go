package tabular

// DataType describes the kind of value a column produces. It only selects the
// intrinsic type of typed output cells; parsing never depends on it.
type DataType int

const (
	Text DataType = iota
	Number
	Decimal
	Currency
	Boolean
	DateTime
	Time
	Composite
	StrongTyped
	Object
	Dynamic
)

// String returns a human-readable name for the DataType.
func (dt DataType) String() string {
	switch dt {
	case Text:
		return "Text"
	case Number:
		return "Number"
	case Decimal:
		return "Decimal"
	case Currency:
		return "Currency"
	case Boolean:
		return "Boolean"
	case DateTime:
		return "DateTime"
	case Time:
		return "Time"
	case Composite:
		return "Composite"
	case StrongTyped:
		return "StrongTyped"
	case Object:
		return "Object"
	case Dynamic:
		return "Dynamic"
	default:
		return "Unknown"
	}
}

// CellKind is the intrinsic type of a cell in a typed grid.
type CellKind int

const (
	CellText CellKind = iota
	CellNumber
	CellBoolean
	CellDateTime
	CellDuration
)

// String returns a human-readable name for the CellKind.
func (ck CellKind) String() string {
	switch ck {
	case CellText:
		return "Text"
	case CellNumber:
		return "Number"
	case CellBoolean:
		return "Boolean"
	case CellDateTime:
		return "DateTime"
	case CellDuration:
		return "Duration"
	default:
		return "Unknown"
	}
}

// CellKindOf returns the grid cell type used for values of the given DataType.
func CellKindOf(dt DataType) CellKind {
	switch dt {
	case Number, Decimal, Currency:
		return CellNumber
	case DateTime:
		return CellDateTime
	case Boolean:
		return CellBoolean
	case Time:
		return CellDuration
	default:
		return CellText
	}
}
