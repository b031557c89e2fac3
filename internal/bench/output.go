// SPDX-License-Identifier: MIT

package bench

import (
	"encoding/json"
	"fmt"
	"io"
)

// JSONLines returns an emit func writing one JSON object per line to w.
func JSONLines(w io.Writer) func(Result) error {
	enc := json.NewEncoder(w)

	return func(res Result) error {
		if err := enc.Encode(res); err != nil {
			return fmt.Errorf("failed to encode result %s: %w", res.RunID, err)
		}

		return nil
	}
}
