// Package segments implements the resolution pass shared by all path drivers. It operates on
// already-split path segments and is deliberately ignorant of roots and separators; callers layer
// absolute-vs-relative handling on top via allowAboveRoot.
package segments

// Normalize resolves "." and ".." references in parts, scanning left to right with an output
// stack. Empty segments and "." contribute nothing. A ".." pops the previous segment when one is
// available; otherwise it is kept when allowAboveRoot is true and dropped silently when false.
func Normalize(parts []string, allowAboveRoot bool) []string {
	var res []string
	for _, p := range parts {
		if p == "" || p == "." {
			continue
		}
		if p == ".." {
			if len(res) > 0 && res[len(res)-1] != ".." {
				res = res[:len(res)-1]
			} else if allowAboveRoot {
				res = append(res, "..")
			}
			continue
		}
		res = append(res, p)
	}
	return res
}

// TrimEmptyEnds removes leading and trailing empty strings from parts. The input slice is returned
// unchanged when no trimming is needed.
func TrimEmptyEnds(parts []string) []string {
	start := 0
	for start < len(parts) && parts[start] == "" {
		start++
	}
	end := len(parts)
	for end > start && parts[end-1] == "" {
		end--
	}
	return parts[start:end]
}
