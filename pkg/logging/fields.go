package logging

import "time"

// Generic field constructors.

func String(key, value string) Field { return Field{Key: key, Value: value} }

func Int(key string, value int) Field { return Field{Key: key, Value: value} }

func Float64(key string, value float64) Field { return Field{Key: key, Value: value} }

func Duration(key string, value time.Duration) Field {
	return Field{Key: key, Value: value.String()}
}

// Domain field helpers shared across the engine.

func Component(name string) Field { return String("component", name) }

func Device(id string) Field { return String("device", id) }

func Host(id string) Field { return String("host", id) }

func QueryID(id string) Field { return String("query_id", id) }

func Hops(n int) Field { return Int("hops", n) }

func Distance(d float64) Field { return Float64("distance", d) }

func Latency(d time.Duration) Field { return Duration("latency", d) }
