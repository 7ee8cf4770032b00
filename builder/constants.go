package builder

// Fixed node IDs shared by all topologies.
const (
	// OutfallID is the receiving node every generated network drains to.
	OutfallID = "OF"
	// JunctionID is the collector node used by Fan.
	JunctionID = "J"
	// InfiltrationID is the sink node of infiltration links.
	InfiltrationID = "INF"
)

// Method tokens used as error context.
const (
	methodBuild      = "BuildNetwork"
	methodSeries     = "Series"
	methodFan        = "Fan"
	methodTree       = "Tree"
	methodGrid       = "Grid"
	methodRandomTree = "RandomTree"
)

// Parameter minimums.
const (
	minSeriesNodes     = 1
	minFanNodes        = 1
	minTreeDepth       = 1
	minTreeBranching   = 1
	minGridDim         = 1
	minRandomTreeNodes = 1
	minProbability     = 0.0
	maxProbability     = 1.0
)

// Link ID formats; the separator matches flags.DefaultSeparator.
const (
	conveyanceIDFmt   = "C-%d"     // plain conveyance link
	treatmentIDFmt    = "%s-%d-TR" // BMP flag, link index, treatment flag
	infiltrationIDFmt = "%s-INF"   // source node, volume reduction flag
	gridIDFmt         = "%d_%d"    // "r_c" cell IDs
)
