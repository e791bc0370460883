//
// FrankyGo - UCI chess engine in GO for learning purposes
//
// MIT License
//
// Copyright (c) 2018-2020 Frank Kopp
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in all
// copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
// SOFTWARE.
//

package search

import "time"

// Limits configures one call to Engine.Search. At least one
// of MaxDepth, MaxTime, MaxNodes must be set, or Infinite must be true —
// otherwise Search returns ErrConfiguration.
type Limits struct {
	MaxDepth  int           // 0 means unset
	MaxTime   time.Duration // 0 means unset
	MaxNodes  uint64        // 0 means unset
	Infinite  bool
}

// IsConfigured reports whether at least one budget (or Infinite) is set.
func (l Limits) IsConfigured() bool {
	return l.MaxDepth > 0 || l.MaxTime > 0 || l.MaxNodes > 0 || l.Infinite
}
