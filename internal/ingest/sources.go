package ingest

import "github.com/sells-group/vision-cli/internal/csvio"

// Semantic field names shared by every source file.
const (
	FieldInsertionOrder = "insertion_order"
	FieldDate           = "date"
	FieldCategory       = "category"
	FieldAppURL         = "app_url"
	FieldImpressions    = "impressions"
	FieldClicks         = "clicks"
	FieldViewable       = "viewable_impressions"
	FieldGender         = "gender"
	FieldAge            = "age"
	FieldDeviceType     = "device_type"
	FieldUnique         = "unique_impressions"
	FieldVideoStarts    = "video_starts"
	FieldVideoViews25   = "video_views25"
	FieldVideoViews50   = "video_views50"
	FieldVideoViews75   = "video_views75"
	FieldVideoViews100  = "video_views100"
)

// ProbeField detects whether a file's first line is a header row.
const ProbeField = FieldInsertionOrder

// CategoryFields is the layout of categories.csv.
var CategoryFields = []csvio.Field{
	{Name: FieldInsertionOrder, Labels: []string{"Insertion Order"}, Default: 0},
	{Name: FieldDate, Labels: []string{"Date"}, Default: 1},
	{Name: FieldCategory, Labels: []string{"Category"}, Default: 2},
	{Name: FieldAppURL, Labels: []string{"App/URL", "App/Url"}, Default: 3},
	{Name: FieldImpressions, Labels: []string{"Impressions"}, Default: 4},
	{Name: FieldClicks, Labels: []string{"Clicks"}, Default: 5},
	{Name: FieldViewable, Labels: []string{"Viewable Impressions"}, Default: 6},
}

// GenderFields is the layout of genders.csv / gender.csv.
var GenderFields = []csvio.Field{
	{Name: FieldInsertionOrder, Labels: []string{"Insertion Order"}, Default: 0},
	{Name: FieldDate, Labels: []string{"Date"}, Default: 1},
	{Name: FieldGender, Labels: []string{"Gender"}, Default: 2},
	{Name: FieldAge, Labels: []string{"Age"}, Default: 3},
	{Name: FieldImpressions, Labels: []string{"Impressions"}, Default: 4},
	{Name: FieldClicks, Labels: []string{"Clicks"}, Default: 5},
}

// DeviceFields is the layout of device.csv.
var DeviceFields = []csvio.Field{
	{Name: FieldInsertionOrder, Labels: []string{"Insertion Order"}, Default: 0},
	{Name: FieldDate, Labels: []string{"Date"}, Default: 1},
	{Name: FieldDeviceType, Labels: []string{"Device Type", "Device"}, Default: 2},
	{Name: FieldImpressions, Labels: []string{"Impressions"}, Default: 3},
	{Name: FieldClicks, Labels: []string{"Clicks"}, Default: 4},
	{Name: FieldViewable, Labels: []string{"Viewable Impressions"}, Default: 5},
}

// UniqueFields is the layout of unique.csv.
var UniqueFields = []csvio.Field{
	{Name: FieldInsertionOrder, Labels: []string{"Insertion Order"}, Default: 0},
	{Name: FieldDate, Labels: []string{"Date"}, Default: 1},
	{Name: FieldImpressions, Labels: []string{"Impressions"}, Default: 2},
	{Name: FieldClicks, Labels: []string{"Clicks"}, Default: 3},
	{Name: FieldViewable, Labels: []string{"Viewable Impressions"}, Default: 4},
	{Name: FieldUnique, Labels: []string{"Unique Impression", "Unique Impressions"}, Default: 5},
	{Name: FieldVideoStarts, Labels: []string{"video_starts", "Video Starts"}, Default: 6},
	{Name: FieldVideoViews25, Labels: []string{"video_views25", "Video Views 25"}, Default: 7},
	{Name: FieldVideoViews50, Labels: []string{"video_views50", "Video Views 50"}, Default: 8},
	{Name: FieldVideoViews75, Labels: []string{"video_views75", "Video Views 75"}, Default: 9},
	{Name: FieldVideoViews100, Labels: []string{"video_views100", "Video Views 100"}, Default: 10},
}
