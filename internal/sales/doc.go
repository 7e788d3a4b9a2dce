// Package sales loads weekly retail sales tables and computes descriptive
// statistics over them: per-store aggregates, holiday-week impact, a trailing
// moving-average demand forecast and a safety-stock / reorder-point figure.
//
// # Data flow
//
//	CSV or XLSX file → Load → Table → Analyzer → result structs → exporter
//
// The table is immutable once loaded; every Analyzer method is a pure
// function of its inputs and recomputes from scratch on each call. Nothing is
// persisted between invocations.
//
// # Loading
//
// Load routes by file extension: .xlsx/.xlsm workbooks go through excelize,
// everything else is read as CSV. Required columns are Store, Date,
// Weekly_Sales and a holiday column (IsHoliday preferred, Holiday_Flag next,
// otherwise any header containing "holiday"). The holiday flag accepts 1/true
// and 0/false only; any other value fails the load. Unknown columns are
// ignored, except the recognized exogenous ones (Temperature, Fuel_Price,
// CPI, Unemployment) which are carried through unused.
//
// # Error handling
//
// All failures carry a Kind from internal/errors (EMPTY_INPUT,
// MISSING_COLUMN, UNKNOWN_STORE, INSUFFICIENT_HISTORY, INVALID_PARAMETER) and
// abort the single invocation; the package performs no retries.
package sales
