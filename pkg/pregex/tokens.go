package pregex

// Tokens are single-character patterns with a name. Characters that need
// escaping are emitted pre-escaped.

// Space matches a single space character.
func Space() *Pregex {
	return newPregex(" ", kindToken)
}

// Tab matches the tab character.
func Tab() *Pregex {
	return newPregex(`\t`, kindToken)
}

// Newline matches the line feed character.
func Newline() *Pregex {
	return newPregex(`\n`, kindToken)
}

// CarriageReturn matches the carriage return character.
func CarriageReturn() *Pregex {
	return newPregex(`\r`, kindToken)
}

// FormFeed matches the form feed character.
func FormFeed() *Pregex {
	return newPregex(`\f`, kindToken)
}

// VerticalTab matches the vertical tab character.
func VerticalTab() *Pregex {
	return newPregex(`\v`, kindToken)
}

// Backslash matches the backslash character.
func Backslash() *Pregex {
	return newPregex(`\\`, kindToken)
}

// Dollar matches the dollar sign.
func Dollar() *Pregex {
	return newPregex(`\$`, kindToken)
}

// Copyright matches the copyright sign.
func Copyright() *Pregex {
	return newPregex("©", kindToken)
}

// Registered matches the registered trademark sign.
func Registered() *Pregex {
	return newPregex("®", kindToken)
}

// Trademark matches the trademark sign.
func Trademark() *Pregex {
	return newPregex("™", kindToken)
}

// Bullet matches the bullet character.
func Bullet() *Pregex {
	return newPregex("•", kindToken)
}

// Euro matches the euro sign.
func Euro() *Pregex {
	return newPregex("€", kindToken)
}

// Pound matches the pound sterling sign.
func Pound() *Pregex {
	return newPregex("£", kindToken)
}

// Infinity matches the infinity sign.
func Infinity() *Pregex {
	return newPregex("∞", kindToken)
}
