package models

import "fmt"

var FormatUnrecognizedErr = fmt.Errorf("csv format unrecognized: file is unreadable or empty")
var NoValidOptionsErr = fmt.Errorf("no valid options found in csv file")
var OracleNotFoundErr = fmt.Errorf("pricing engine executable not found")
