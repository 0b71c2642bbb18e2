// FILE: src/internal/core/const.go
package core

// Standard field keys, always emitted first in this order
const (
	FieldTimeStamp  = "TimeStamp"
	FieldLevel      = "Level"
	FieldLoggerName = "LoggerName"
	FieldMessage    = "Message"
)

// CollisionPrefix is prepended to a property key whose bare name is
// already taken by a standard field or an earlier property.
const CollisionPrefix = "properties_"

// TimestampLayout renders event times with millisecond precision and a
// literal UTC marker.
const TimestampLayout = "2006-01-02T15:04:05.000Z"

const DefaultSinkBufferSize = 1000
