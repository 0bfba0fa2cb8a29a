package readview

// EncodingResolver guesses the character encoding of raw HTML bytes.
type EncodingResolver interface {
	// Resolve returns a normalized encoding name such as "utf-8" or
	// "windows-1252". It never fails; undecidable input resolves to "utf-8".
	Resolve(raw []byte) string
}

// AttributeCleaner strips presentational and scripting attributes from
// serialized markup.
type AttributeCleaner interface {
	CleanAttributes(markup string) (string, error)
}
