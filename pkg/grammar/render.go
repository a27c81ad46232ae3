package grammar

import "strings"

// RenderElement renders a PatternElement back into placeholder body form
// (without the surrounding braces), used by round-trip tests.
func RenderElement(e *PatternElement) string {
	switch e.Kind {
	case ElementSelector:
		return renderSelectorBody(e.Selector)
	case ElementNumberGen:
		return renderNumberGen(e.Number)
	case ElementSpecialCharGen:
		return renderSpecialCharGen(e.Special)
	default:
		return ""
	}
}

func renderSelectorBody(s *Selector) string {
	var b strings.Builder
	b.WriteString(s.Kind)
	if s.Language != "" {
		b.WriteByte('@')
		b.WriteString(s.Language)
	}
	body := renderSelBody(s.IncludeTags, s.ExcludeTags, s.SizeLimit, s.OptionKeys, s.OptionValues)
	if body != "" {
		b.WriteByte(':')
		b.WriteString(body)
	}
	return b.String()
}

// RenderGlobalSettings renders a GlobalSettings value as it would appear
// inside the surrounding "[" "]" of a global settings block.
func RenderGlobalSettings(g *GlobalSettings) string {
	var b strings.Builder
	if g.Language != "" {
		b.WriteByte('@')
		b.WriteString(g.Language)
		b.WriteByte(' ')
	}
	b.WriteString(renderSelBody(g.IncludeTags, g.ExcludeTags, g.SizeLimit, g.OptionKeys, g.OptionValues))
	return strings.TrimSpace(b.String())
}

func renderSelBody(include, exclude []string, size *SizeLimit, optKeys []string, optVals map[string]string) string {
	// Tag list and size limit are separated by whitespace; only the options
	// list is introduced by a comma.
	var parts []string

	var tags []string
	tags = append(tags, prefixEach("+", include)...)
	tags = append(tags, prefixEach("-", exclude)...)
	if len(tags) > 0 {
		parts = append(parts, strings.Join(tags, " "))
	}

	if size != nil {
		parts = append(parts, size.Op.String()+itoa(size.Value))
	}

	body := strings.Join(parts, " ")
	if len(optKeys) > 0 {
		var opts []string
		for _, k := range optKeys {
			opts = append(opts, k+"="+optVals[k])
		}
		if body != "" {
			body += ","
		}
		body += strings.Join(opts, ",")
	}

	return body
}

func renderNumberGen(n *NumberGen) string {
	if n.MaxLength == 1 && n.Base == BaseDec {
		return "number"
	}
	return "number:" + itoa(n.MaxLength) + "," + n.Base.String()
}

func renderSpecialCharGen(s *SpecialCharGen) string {
	if s.MinLength == s.MaxLength {
		return "special:" + itoa(s.MinLength)
	}
	return "special:" + itoa(s.MinLength) + "-" + itoa(s.MaxLength)
}

func prefixEach(prefix string, tags []string) []string {
	out := make([]string, len(tags))
	for i, t := range tags {
		out[i] = prefix + t
	}
	return out
}

func itoa(n int) string {
	if n == 0 {
		return "0"
	}
	neg := n < 0
	if neg {
		n = -n
	}
	var buf [20]byte
	i := len(buf)
	for n > 0 {
		i--
		buf[i] = byte('0' + n%10)
		n /= 10
	}
	if neg {
		i--
		buf[i] = '-'
	}
	return string(buf[i:])
}
