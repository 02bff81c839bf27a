package controllers

import "errors"

// Billing calculation errors
var errMonthNotSetInQuery = errors.New("the month query parameter must be set")
