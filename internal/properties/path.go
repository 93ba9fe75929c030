package properties

import (
	"fmt"
	"strconv"
	"strings"
)

// Walk traverses a relative access path from the given node, e.g.
// "ProcessingOutputConfig.Outputs['train'].S3Output.S3Uri" or
// "InputDataConfig[0].ChannelName". Structure members are checked against
// the schema; list and map access is total.
func Walk(p *Properties, path string) (*Properties, error) {
	rest := path
	node := p
	for rest != "" {
		switch {
		case rest[0] == '.':
			rest = rest[1:]
		case rest[0] == '[':
			end := strings.IndexByte(rest, ']')
			if end < 0 {
				return nil, fmt.Errorf("unterminated index in property path %q", path)
			}
			idx := rest[1:end]
			rest = rest[end+1:]
			if len(idx) >= 2 && idx[0] == '\'' && idx[len(idx)-1] == '\'' {
				node = node.Key(idx[1 : len(idx)-1])
				continue
			}
			n, err := strconv.Atoi(idx)
			if err != nil {
				return nil, fmt.Errorf("invalid index %q in property path %q", idx, path)
			}
			node = node.Index(n)
		default:
			end := strings.IndexAny(rest, ".[")
			name := rest
			if end >= 0 {
				name = rest[:end]
				rest = rest[end:]
			} else {
				rest = ""
			}
			next, err := node.Member(name)
			if err != nil {
				return nil, err
			}
			node = next
		}
	}
	return node, nil
}
