// Package optimaxx simulates the growth of an investment spread over a
// selection of financial instruments.
//
// For each selected instrument it retrieves the historical adjusted-close
// prices over the investment horizon, reduces them to an average daily return
// (geometric or arithmetic), annualizes that return over 252 trading days, and
// averages the annualized returns of all instruments into a portfolio return
// that is used to project the final capital.
//
// The main pieces are:
//   - Catalog: the static list of instruments available for selection.
//   - PriceProvider: the market-data source, see the yahoo and eodhd packages.
//   - ReturnStrategy: the geometric and arithmetic daily return calculations.
//   - Simulator: runs a Request through the whole pipeline into a Result.
//
// Failures are never fatal: an instrument without usable data is skipped and
// reported as a Warning, and a Result without any usable instrument reports
// StatusNoValidData instead of a zero return.
package optimaxx
