package models

// AccessRecord is a single parsed access-log line. Hour is in [0,23] and
// Month in [1,12]; the parsers reject lines outside those ranges, so
// consumers may index counter buckets without further checks.
//
// Method, Path and UserAgent are only populated by the combined log format;
// the simple format carries timestamp fields alone.
type AccessRecord struct {
	Year   int
	Month  int
	Day    int
	Hour   int
	Minute int

	Method    string
	Path      string
	UserAgent string
}
