// Package activity records catalog operations to side channels such as an
// append-only text file. Recording is best effort: sinks swallow their own
// failures so a broken sink never fails the operation being recorded.
package activity

// Operation tags.
const (
	OpInit     = "INIT"
	OpCreate   = "CREATE"
	OpDelete   = "DELETE"
	OpRecover  = "RECOVER"
	OpOptimize = "OPTIMIZE"
	OpError    = "ERROR"
)

// Logger receives one record per catalog operation.
type Logger interface {
	Record(operation, details string)
}

// Nop discards every record.
type Nop struct{}

func (Nop) Record(operation, details string) {}

type multiLogger []Logger

// Multi fans each record out to every logger, in order. Nil loggers are skipped.
func Multi(loggers ...Logger) Logger {
	m := make(multiLogger, 0, len(loggers))
	for _, l := range loggers {
		if l != nil {
			m = append(m, l)
		}
	}
	return m
}

func (m multiLogger) Record(operation, details string) {
	for _, l := range m {
		l.Record(operation, details)
	}
}
