package lzokay

// compressLevelParams holds the match search parameters of one compression level.
type compressLevelParams struct {
	maxChain   int  // hash-chain probe depth
	niceLen    int  // stop searching once a match this long is found
	lazy       bool // compare against the match starting one byte later
	useBestOff bool // shorten far matches into cheaper distance classes
}

// fixedLevels defines parameters for compression levels 1-9.
var fixedLevels = [MaxCompressionLevel]compressLevelParams{
	{4, 16, false, false},
	{8, 32, false, false},
	{16, 32, false, true},
	{24, 64, false, true},
	{48, 128, true, true},
	{64, 128, true, true},
	{80, 256, true, true},
	{128, 1024, true, true},
	{256, 2048, true, true},
}

// levelParams returns the parameters for level after clamping.
func levelParams(level int) compressLevelParams {
	return fixedLevels[clampLevel(level)-1]
}
