/*
 * Copyright (c) 2025, Kyle Brown <kylebrw@gmail.com>
 *
 * SPDX-License-Identifier: BSD-2-Clause
 */

package expand

import (
	"github.com/kylebrw/slang/pkg/common/parse"
	"github.com/kylebrw/slang/pkg/rules"
)

// expandTemplate renders a match's template. Literals emit verbatim; a
// variable reference emits its single bound token; a block reference
// re-runs the driver over the captured span at depth+1, so macros
// inside the block are fully resolved before splicing. References
// adopt the template element's trailing suffix on their last token.
func (d *Driver) expandTemplate(m *Match, depth int) ([]parse.Token, error) {
	var out []parse.Token

	for _, el := range m.Rule.Template {
		switch el.Kind {
		case rules.ElemLiteral:
			out = append(out, el.Token)

		case rules.ElemVariable:
			tok := m.Bindings[el.Name][0]
			tok.Suffix = el.Suffix
			out = append(out, tok)

		case rules.ElemBlock:
			expanded, err := d.run(m.Bindings[el.Name], depth+1)
			if err != nil {
				return nil, err
			}
			if len(expanded) > 0 {
				expanded[len(expanded)-1].Suffix = el.Suffix
			}
			out = append(out, expanded...)
		}
	}

	return out, nil
}
