// Package diag holds the diagnostic model shared by the lexer, the parser
// and the rule engine: severities, codes, the Bag accumulator, and the
// Reporter contract. Rules identify themselves by kebab-case names (see
// Code.Name); codes keep a stable numeric ID for machine output.
package diag
