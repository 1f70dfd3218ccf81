package ati

// Format is the response format requested from the API.
type Format string

const (
	FormatJSON Format = "json"
	FormatHTML Format = "html"
	FormatXML  Format = "xml"
	FormatCSV  Format = "csv"

	// DefaultFormat is used whenever a requested format is empty or not
	// compatible with the operation.
	DefaultFormat = FormatJSON
)

// Routes exposed by the Data API v2.
const (
	RouteData     = "getdata"
	RouteRowCount = "getrowcount"
	RouteMaxDate  = "getmaxdate"
)

// dataFormats is the compatibility set for the getdata route.
var dataFormats = map[Format]bool{
	FormatJSON: true,
	FormatHTML: true,
	FormatXML:  true,
	FormatCSV:  true,
}

// countFormats is the compatibility set for the getrowcount and getmaxdate
// routes; csv is not supported there.
var countFormats = map[Format]bool{
	FormatJSON: true,
	FormatHTML: true,
	FormatXML:  true,
}

// ResolveDataFormat validates a format against the getdata compatibility set.
// An incompatible or empty format silently degrades to json; this is
// observable API behavior, not an error.
func ResolveDataFormat(format Format) Format {
	if dataFormats[format] {
		return format
	}

	return DefaultFormat
}

// ResolveCountFormat validates a format against the getrowcount/getmaxdate
// compatibility set, with the same silent json fallback.
func ResolveCountFormat(format Format) Format {
	if countFormats[format] {
		return format
	}

	return DefaultFormat
}
