// Package target holds the per-language output profiles: comment leader,
// file extension, and the declaration templates one variable entry is
// rendered through. The built-in table covers the header, shell-script, php,
// and macro targets; adding a language means registering one more Profile,
// either in code or from a YAML document.
package target
