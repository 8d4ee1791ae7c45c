package section

// offsets and sizes in the file
const (
	HeaderSize         = 32         // fixed header size in bytes
	PreambleSize       = 8          // section id + next section offset
	FirstSectionOffset = HeaderSize // byte offset where the first section starts
)
