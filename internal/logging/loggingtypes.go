package logging

// GetLogType builds the structured key/value slice attached to log entries.
// The first value is the log subtype, the optional second one a request or
// note correlation id.
func GetLogType(logType ...string) []any {
	var keyVal []any
	for i, v := range logType {
		if v == "" {
			break
		}
		switch i {
		case 0:
			keyVal = append(keyVal, "subType", v)
		case 1:
			keyVal = append(keyVal, "correlationId", v)
		}
	}
	return keyVal
}

func GetLogTypeInitialization() []any {
	return GetLogType("initialization")
}

func GetLogTypeNote(noteRef string) []any {
	return GetLogType("note", noteRef)
}

func GetLogTypeHistory() []any {
	return GetLogType("history")
}

func GetLogTypeExport() []any {
	return GetLogType("export")
}
