// Package sales reads the backing tabular source of the sales data server.
//
// A Source yields the raw CSV bytes (local file or S3 object); ParseCSV turns
// them into ordered, typed records. A missing source is reported as
// common.ErrDataUnavailable so the transport can answer 404.
package sales
