package models

// ValueRange mirrors the values body of the Sheets v4 read, append and
// range-write endpoints. Row 0 of a read response is the header row.
type ValueRange struct {
	Range  string     `json:"range,omitempty"`
	Values [][]string `json:"values"`
}

// BatchUpdateRequest describes structural sheet changes. Only single-row
// dimension deletion is used.
type BatchUpdateRequest struct {
	Requests []SheetRequest `json:"requests"`
}

type SheetRequest struct {
	DeleteDimension *DeleteDimensionRequest `json:"deleteDimension,omitempty"`
}

type DeleteDimensionRequest struct {
	Range DimensionRange `json:"range"`
}

// DimensionRange addresses rows [StartIndex, EndIndex) of a sheet using
// 0-based indices, the convention of the batchUpdate endpoint.
type DimensionRange struct {
	SheetID    int64  `json:"sheetId"`
	Dimension  string `json:"dimension"`
	StartIndex int64  `json:"startIndex"`
	EndIndex   int64  `json:"endIndex"`
}
