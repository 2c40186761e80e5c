// Package fristen generates the yearly BDEW Fristenkalender.
//
// A Frist is derived from a month anchor by counting Werktage either forward
// from the first day of the month ("<N>WT") or backward from its last day
// ("LWT", "<N>LWT"). For a target year the generator evaluates fourteen
// anchors, October of the previous year through January of the following
// year, and keeps every Frist dated inside [1 Dec Y-1, 1 Feb Y+1).
//
// Backward counting treats the last calendar day of a month as the first
// position even when it is not a working day. "3LWT" for December 2024 (the
// 31st is a BDEW holiday) therefore resolves to the 23rd, while for May 2022
// (the 31st is a working day, the 26th a holiday) it resolves to the 25th.
//
// Working-day knowledge is injected through workday.Oracle.
package fristen
