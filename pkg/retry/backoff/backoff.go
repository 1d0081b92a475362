package backoff

import (
	"math"
	"time"
)

// Strategy is a function that provides the amount of delay for a given attempt.
// The return value is the delay for the next attempt.
type Strategy func(attempts uint) time.Duration

// Constant returns a strategy with a constant delay between attempts.
func Constant(interval time.Duration) Strategy {
	return func(attempts uint) time.Duration {
		return interval
	}
}

// Linear returns a strategy where the delay grows linearly with the number of
// attempts.
func Linear(interval time.Duration) Strategy {
	return func(attempts uint) time.Duration {
		return time.Duration(attempts) * interval
	}
}

// Exponential returns a strategy where the delay grows exponentially with the
// number of attempts, with the provided base.
func Exponential(interval time.Duration, base float64) Strategy {
	return func(attempts uint) time.Duration {
		return time.Duration(float64(interval) * math.Pow(base, float64(attempts-1)))
	}
}

// BinaryExponential returns an Exponential strategy with a base of 2.
func BinaryExponential(interval time.Duration) Strategy {
	return Exponential(interval, 2)
}
