// SPDX-License-Identifier: MIT

package warebot

import (
	"fmt"

	"github.com/katalvlaran/warebot/bfs"
	"github.com/katalvlaran/warebot/dfs"
	"github.com/katalvlaran/warebot/search"
	"github.com/katalvlaran/warebot/ucs"
)

// NewStrategy returns the engine for alg, configured with opts.
// The returned value also implements fmt.Stringer with the short name.
//
// Errors:
//   - search.ErrUnknownAlgorithm if alg is not one of search.Algorithms().
func NewStrategy(alg search.Algorithm, opts ...search.Option) (search.Strategy, error) {
	switch alg {
	case search.BFS:
		return bfs.New(opts...), nil
	case search.DFS:
		return dfs.New(opts...), nil
	case search.UCS:
		return ucs.New(opts...), nil
	}
	return nil, fmt.Errorf("%w: %v", search.ErrUnknownAlgorithm, alg)
}

// ParseStrategy resolves name with search.ParseAlgorithm and builds the engine.
func ParseStrategy(name string, opts ...search.Option) (search.Strategy, error) {
	alg, err := search.ParseAlgorithm(name)
	if err != nil {
		return nil, err
	}
	return NewStrategy(alg, opts...)
}
