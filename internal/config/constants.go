package config

// Table layout. Column order is fixed: slug, title, current value, target
// value, lose date, time left, last updated, status.
var (
	ColumnTitles = []string{"Slug", "Description", "Current", "Goal", "Lose Date", "Time Left", "Last Updated", "Status"}
	ColumnWidths = []int{15, 25, 10, 10, 20, 15, 20, 10}
)

// Layout constants.
const (
	// ColumnGap separates adjacent table columns.
	ColumnGap = 2

	// TableLeftMargin is the left indent of the table body.
	TableLeftMargin = 2

	// TableHeaderRows covers the title, header and separator rows above
	// the first goal row.
	TableHeaderRows = 3

	// FooterReserve is the number of rows kept free at the bottom of the
	// screen for the key-binding footer.
	FooterReserve = 1

	// DetailLabelWidth is the fixed width of field labels in the detail
	// pane, colon included.
	DetailLabelWidth = 20

	// DetailValueMargin is the column at which detail values start.
	DetailValueMargin = 22

	// TruncationSuffix is appended to truncated table cells.
	TruncationSuffix = "..."
)

// Input constraints.
const (
	// PromptWidth is the inner width of the modal input overlay.
	PromptWidth = 56

	// MaxCommentLength is the maximum datapoint comment length.
	MaxCommentLength = 200
)

// Application settings.
const (
	AppName = "beemind"

	// BaseWebURL is the public site, used for the browser-open binding.
	BaseWebURL = "https://www.beeminder.com"
)
