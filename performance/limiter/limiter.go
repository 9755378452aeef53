// This file is part of Gopher8.
//
// Gopher8 is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Gopher8 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Gopher8.  If not, see <https://www.gnu.org/licenses/>.

// Package limiter is used to regulate the rate at which the emulation
// executes instructions.
package limiter

import (
	"fmt"
	"time"
)

// DefaultRate is the number of instructions per second used by the play
// mode unless the user specifies otherwise.
const DefaultRate = 60

// Limiter can be used to limit the rate at which the emulation executes.
type Limiter struct {
	rate     int
	interval time.Duration
	ticker   *time.Ticker
}

// NewLimiter is the preferred method of initialisation for the Limiter type.
func NewLimiter(rate int) (*Limiter, error) {
	interval, err := period(rate)
	if err != nil {
		return nil, err
	}

	lim := &Limiter{
		rate:     rate,
		interval: interval,
		ticker:   time.NewTicker(interval),
	}

	return lim, nil
}

func period(rate int) (time.Duration, error) {
	if rate <= 0 {
		return 0, fmt.Errorf("limiter: rate must be a positive number (%d)", rate)
	}
	return time.Second / time.Duration(rate), nil
}

// SetLimit changes the rate limit. A new limit takes effect immediately.
func (lim *Limiter) SetLimit(rate int) error {
	interval, err := period(rate)
	if err != nil {
		return err
	}
	lim.rate = rate
	lim.interval = interval
	lim.ticker.Reset(interval)
	return nil
}

// Rate returns the current limit in instructions per second.
func (lim *Limiter) Rate() int {
	return lim.rate
}

// Wait will block until the next tick.
func (lim *Limiter) Wait() {
	<-lim.ticker.C
}

// HasWaited returns true if it has been a sufficient time since the last
// tick. Does not block.
func (lim *Limiter) HasWaited() bool {
	select {
	case <-lim.ticker.C:
		return true
	default:
		return false
	}
}

// Stop the limiter. The Limiter instance should not be used again.
func (lim *Limiter) Stop() {
	lim.ticker.Stop()
}
