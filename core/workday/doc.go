// Package workday defines the working-day capability the Fristen engine
// consumes. Implementations own all holiday knowledge; the engine only asks
// whether a day is a working day and steps between working days.
package workday
