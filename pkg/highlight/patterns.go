package highlight

// Order matters: every match overwrites the color of its range, so a pattern
// placed later wins over the ones before it.

const (
	doubleQuoted = `"[^"\\]*(?:\\.[^"\\]*)*"`
	singleQuoted = `'[^'\\]*(?:\\.[^'\\]*)*'`
	decimal      = `\b\d+\.?\d*\b`
)

var defaultPatterns = map[Language][]LanguagePattern{
	PlainText: {},

	Markdown: {
		LinePattern(`^#{1,6}\s.*$`, TokenHeading),
		Pattern(`\*\*[^*]+\*\*`, TokenEmphasis),
		Pattern(`__[^_]+__`, TokenEmphasis),
		Pattern(`\*[^*]+\*`, TokenEmphasis),
		Pattern(`_[^_]+_`, TokenEmphasis),
		Pattern("`[^`]+`", TokenCodeBlock),
		Pattern("```[\\s\\S]*?```", TokenCodeBlock),
		Pattern(`\[([^\]]+)\]\(([^)]+)\)`, TokenLink),
		LinePattern(`^>\s.*$`, TokenComment),
		LinePattern(`^[-*+]\s`, TokenPunctuation),
		LinePattern(`^\d+\.\s`, TokenPunctuation),
	},

	JSON: {
		Pattern(doubleQuoted+`\s*:`, TokenProperty),
		Pattern(doubleQuoted, TokenString),
		Pattern(`-?\d+\.?\d*(?:[eE][+-]?\d+)?`, TokenNumber),
		Pattern(`\b(true|false|null)\b`, TokenKeyword),
		Pattern(`[{}\[\]:,]`, TokenPunctuation),
	},

	JavaScript: {
		LinePattern(`//.*$`, TokenComment),
		Pattern(`/\*[\s\S]*?\*/`, TokenComment),
		Pattern(doubleQuoted, TokenString),
		Pattern(singleQuoted, TokenString),
		Pattern("`[^`]*`", TokenString),
		Pattern(`\b(const|let|var|function|return|if|else|for|while|do|switch|case|break|continue|new|this|class|extends|import|export|from|default|async|await|try|catch|finally|throw|typeof|instanceof)\b`, TokenKeyword),
		Pattern(`\b(true|false|null|undefined|NaN|Infinity)\b`, TokenKeyword),
		Pattern(decimal, TokenNumber),
		Pattern(`\b([A-Z][a-zA-Z0-9]*)\b`, TokenType),
		Pattern(`\b([a-z_][a-zA-Z0-9_]*)\s*\(`, TokenFunction),
		Pattern(`[{}\[\]();,.]`, TokenPunctuation),
		Pattern(`[+\-*/%=<>!&|^~?:]`, TokenOperator),
	},

	Python: {
		LinePattern(`#.*$`, TokenComment),
		Pattern(`"""[\s\S]*?"""`, TokenString),
		Pattern(`'''[\s\S]*?'''`, TokenString),
		Pattern(doubleQuoted, TokenString),
		Pattern(singleQuoted, TokenString),
		Pattern(`\b(def|class|import|from|as|return|if|elif|else|for|while|break|continue|pass|raise|try|except|finally|with|lambda|yield|global|nonlocal|assert|del|in|is|and|or|not)\b`, TokenKeyword),
		Pattern(`\b(True|False|None)\b`, TokenKeyword),
		Pattern(decimal, TokenNumber),
		Pattern(`\b([A-Z][a-zA-Z0-9_]*)\b`, TokenType),
		Pattern(`\bdef\s+([a-z_][a-zA-Z0-9_]*)`, TokenFunction),
		Pattern(`[{}\[\]():,.]`, TokenPunctuation),
		Pattern(`[+\-*/%=<>!@&|^~]`, TokenOperator),
	},

	HTML: {
		Pattern(`<!--[\s\S]*?-->`, TokenComment),
		Pattern(`</?([a-zA-Z][a-zA-Z0-9]*)`, TokenTag),
		Pattern(`\b([a-zA-Z-]+)=`, TokenAttribute),
		Pattern(`"[^"]*"`, TokenString),
		Pattern(`'[^']*'`, TokenString),
		Pattern(`[<>=/]`, TokenPunctuation),
	},

	CSS: {
		Pattern(`/\*[\s\S]*?\*/`, TokenComment),
		Pattern(`([.#][a-zA-Z][a-zA-Z0-9_-]*)`, TokenType),
		Pattern(`@[a-zA-Z]+`, TokenKeyword),
		Pattern(`([a-zA-Z-]+)\s*:`, TokenProperty),
		Pattern(`"[^"]*"`, TokenString),
		Pattern(`'[^']*'`, TokenString),
		Pattern(`#[0-9a-fA-F]{3,8}`, TokenNumber),
		Pattern(`\b\d+(\.\d+)?(px|em|rem|%|vh|vw|pt|cm|mm)?\b`, TokenNumber),
		Pattern(`[{}();:,]`, TokenPunctuation),
	},

	SwiftLike: {
		LinePattern(`//.*$`, TokenComment),
		Pattern(`/\*[\s\S]*?\*/`, TokenComment),
		Pattern(doubleQuoted, TokenString),
		Pattern(`\b(import|class|struct|enum|protocol|extension|func|var|let|if|else|guard|switch|case|default|for|while|repeat|break|continue|return|throw|throws|try|catch|as|is|in|where|self|Self|super|init|deinit|get|set|willSet|didSet|lazy|static|final|override|mutating|nonmutating|convenience|required|open|public|internal|fileprivate|private|weak|unowned|inout|some|any|async|await|actor)\b`, TokenKeyword),
		Pattern(`\b(true|false|nil)\b`, TokenKeyword),
		Pattern(decimal, TokenNumber),
		Pattern(`\b([A-Z][a-zA-Z0-9]*)\b`, TokenType),
		Pattern(`\bfunc\s+([a-z_][a-zA-Z0-9_]*)`, TokenFunction),
		Pattern(`[{}\[\]():,.<>]`, TokenPunctuation),
		Pattern(`[+\-*/%=<>!&|^~?:]`, TokenOperator),
		Pattern(`@[a-zA-Z]+`, TokenAttribute),
	},

	YAML: {
		LinePattern(`#.*$`, TokenComment),
		LinePattern(`^[a-zA-Z_][a-zA-Z0-9_]*:`, TokenProperty),
		Pattern(`"[^"]*"`, TokenString),
		Pattern(`'[^']*'`, TokenString),
		Pattern(`\b(true|false|null|yes|no|on|off)\b`, TokenKeyword),
		Pattern(decimal, TokenNumber),
		Pattern(`[:\-|>]`, TokenPunctuation),
	},

	Shell: {
		LinePattern(`#.*$`, TokenComment),
		Pattern(doubleQuoted, TokenString),
		Pattern(`'[^']*'`, TokenString),
		Pattern(`\b(if|then|else|elif|fi|for|while|do|done|case|esac|function|return|exit|break|continue|export|source|alias|unalias|cd|pwd|echo|printf|read|local|declare)\b`, TokenKeyword),
		Pattern(`\$[a-zA-Z_][a-zA-Z0-9_]*`, TokenVariable),
		Pattern(`\$\{[^}]+\}`, TokenVariable),
		Pattern(`\b\d+\b`, TokenNumber),
		Pattern(`[|&;()<>]`, TokenPunctuation),
	},
}
