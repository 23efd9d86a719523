package errors

import "strconv"

// Code is a terminal or trade-server error code reported in the error_code field.
type Code int

// CodeUnknown is returned by FromCode for values missing from the table.
const CodeUnknown Code = -1

// Trade server codes.
const (
	CodeNoError                  Code = 0
	CodeNoResult                 Code = 1
	CodeCommonError              Code = 2
	CodeInvalidTradeParameters   Code = 3
	CodeServerBusy               Code = 4
	CodeOldVersion               Code = 5
	CodeNoConnection             Code = 6
	CodeNotEnoughRights          Code = 7
	CodeTooFrequentRequests      Code = 8
	CodeMalfunctionalTrade       Code = 9
	CodeAccountDisabled          Code = 64
	CodeInvalidAccount           Code = 65
	CodeTradeTimeout             Code = 128
	CodeInvalidPrice             Code = 129
	CodeInvalidStops             Code = 130
	CodeInvalidTradeVolume       Code = 131
	CodeMarketClosed             Code = 132
	CodeTradeDisabled            Code = 133
	CodeNotEnoughMoney           Code = 134
	CodePriceChanged             Code = 135
	CodeOffQuotes                Code = 136
	CodeBrokerBusy               Code = 137
	CodeRequote                  Code = 138
	CodeOrderLocked              Code = 139
	CodeLongPositionsOnlyAllowed Code = 140
	CodeTooManyRequests          Code = 141
	CodeTradeModifyDenied        Code = 145
	CodeTradeContextBusy         Code = 146
	CodeTradeExpirationDenied    Code = 147
	CodeTradeTooManyOrders       Code = 148
	CodeTradeHedgeProhibited     Code = 149
	CodeTradeProhibitedByFIFO    Code = 150
)

// Terminal runtime codes.
const (
	CodeNoMQLError                  Code = 4000
	CodeWrongFunctionPointer        Code = 4001
	CodeArrayIndexOutOfRange        Code = 4002
	CodeNoMemoryForCallStack        Code = 4003
	CodeRecursiveStackOverflow      Code = 4004
	CodeNotEnoughStackForParam      Code = 4005
	CodeNoMemoryForParamString      Code = 4006
	CodeNoMemoryForTempString       Code = 4007
	CodeNotInitializedString        Code = 4008
	CodeNotInitializedArrayString   Code = 4009
	CodeNoMemoryForArrayString      Code = 4010
	CodeTooLongString               Code = 4011
	CodeRemainderFromZeroDivide     Code = 4012
	CodeZeroDivide                  Code = 4013
	CodeUnknownCommand              Code = 4014
	CodeWrongJump                   Code = 4015
	CodeNotInitializedArray         Code = 4016
	CodeDLLCallsNotAllowed          Code = 4017
	CodeCannotLoadLibrary           Code = 4018
	CodeCannotCallFunction          Code = 4019
	CodeExternalCallsNotAllowed     Code = 4020
	CodeNoMemoryForReturnedStr      Code = 4021
	CodeSystemBusy                  Code = 4022
	CodeDLLFuncCriticalError        Code = 4023
	CodeInternalError               Code = 4024
	CodeOutOfMemory                 Code = 4025
	CodeInvalidPointer              Code = 4026
	CodeFormatTooManyFormatters     Code = 4027
	CodeFormatTooManyParameters     Code = 4028
	CodeArrayInvalid                Code = 4029
	CodeChartNoReply                Code = 4030
	CodeInvalidFunctionParamsCnt    Code = 4050
	CodeInvalidFunctionParamValue   Code = 4051
	CodeStringFunctionInternal      Code = 4052
	CodeSomeArrayError              Code = 4053
	CodeIncorrectSeriesArrayUsing   Code = 4054
	CodeCustomIndicatorError        Code = 4055
	CodeIncompatibleArrays          Code = 4056
	CodeGlobalVariablesProcessing   Code = 4057
	CodeGlobalVariableNotFound      Code = 4058
	CodeFuncNotAllowedInTesting     Code = 4059
	CodeFunctionNotConfirmed        Code = 4060
	CodeSendMailError               Code = 4061
	CodeStringParameterExpected     Code = 4062
	CodeIntegerParameterExpected    Code = 4063
	CodeDoubleParameterExpected     Code = 4064
	CodeArrayAsParameterExpected    Code = 4065
	CodeHistoryWillUpdated          Code = 4066
	CodeTradeError                  Code = 4067
	CodeResourceNotFound            Code = 4068
	CodeResourceNotSupported        Code = 4069
	CodeResourceDuplicated          Code = 4070
	CodeIndicatorCannotInit         Code = 4071
	CodeIndicatorCannotLoad         Code = 4072
	CodeNoHistoryData               Code = 4073
	CodeNoMemoryForHistory          Code = 4074
	CodeNoMemoryForIndicator        Code = 4075
	CodeEndOfFile                   Code = 4099
	CodeSomeFileError               Code = 4100
	CodeWrongFileName               Code = 4101
	CodeTooManyOpenedFiles          Code = 4102
	CodeCannotOpenFile              Code = 4103
	CodeIncompatibleFileAccess      Code = 4104
	CodeNoOrderSelected             Code = 4105
	CodeUnknownSymbol               Code = 4106
	CodeInvalidPriceParam           Code = 4107
	CodeInvalidTicket               Code = 4108
	CodeTradeNotAllowed             Code = 4109
	CodeLongsNotAllowed             Code = 4110
	CodeShortsNotAllowed            Code = 4111
	CodeTradeExpertDisabledByServer Code = 4112
	CodeObjectAlreadyExists         Code = 4200
	CodeUnknownObjectProperty       Code = 4201
	CodeObjectDoesNotExist          Code = 4202
	CodeUnknownObjectType           Code = 4203
	CodeNoObjectName                Code = 4204
	CodeObjectCoordinatesError      Code = 4205
	CodeNoSpecifiedSubwindow        Code = 4206
	CodeSomeObjectError             Code = 4207
)

var codeNames = map[Code]string{
	CodeNoError:                     "ERR_NO_ERROR",
	CodeNoResult:                    "ERR_NO_RESULT",
	CodeCommonError:                 "ERR_COMMON_ERROR",
	CodeInvalidTradeParameters:      "ERR_INVALID_TRADE_PARAMETERS",
	CodeServerBusy:                  "ERR_SERVER_BUSY",
	CodeOldVersion:                  "ERR_OLD_VERSION",
	CodeNoConnection:                "ERR_NO_CONNECTION",
	CodeNotEnoughRights:             "ERR_NOT_ENOUGH_RIGHTS",
	CodeTooFrequentRequests:         "ERR_TOO_FREQUENT_REQUESTS",
	CodeMalfunctionalTrade:          "ERR_MALFUNCTIONAL_TRADE",
	CodeAccountDisabled:             "ERR_ACCOUNT_DISABLED",
	CodeInvalidAccount:              "ERR_INVALID_ACCOUNT",
	CodeTradeTimeout:                "ERR_TRADE_TIMEOUT",
	CodeInvalidPrice:                "ERR_INVALID_PRICE",
	CodeInvalidStops:                "ERR_INVALID_STOPS",
	CodeInvalidTradeVolume:          "ERR_INVALID_TRADE_VOLUME",
	CodeMarketClosed:                "ERR_MARKET_CLOSED",
	CodeTradeDisabled:               "ERR_TRADE_DISABLED",
	CodeNotEnoughMoney:              "ERR_NOT_ENOUGH_MONEY",
	CodePriceChanged:                "ERR_PRICE_CHANGED",
	CodeOffQuotes:                   "ERR_OFF_QUOTES",
	CodeBrokerBusy:                  "ERR_BROKER_BUSY",
	CodeRequote:                     "ERR_REQUOTE",
	CodeOrderLocked:                 "ERR_ORDER_LOCKED",
	CodeLongPositionsOnlyAllowed:    "ERR_LONG_POSITIONS_ONLY_ALLOWED",
	CodeTooManyRequests:             "ERR_TOO_MANY_REQUESTS",
	CodeTradeModifyDenied:           "ERR_TRADE_MODIFY_DENIED",
	CodeTradeContextBusy:            "ERR_TRADE_CONTEXT_BUSY",
	CodeTradeExpirationDenied:       "ERR_TRADE_EXPIRATION_DENIED",
	CodeTradeTooManyOrders:          "ERR_TRADE_TOO_MANY_ORDERS",
	CodeTradeHedgeProhibited:        "ERR_TRADE_HEDGE_PROHIBITED",
	CodeTradeProhibitedByFIFO:       "ERR_TRADE_PROHIBITED_BY_FIFO",
	CodeNoMQLError:                  "ERR_NO_MQLERROR",
	CodeWrongFunctionPointer:        "ERR_WRONG_FUNCTION_POINTER",
	CodeArrayIndexOutOfRange:        "ERR_ARRAY_INDEX_OUT_OF_RANGE",
	CodeNoMemoryForCallStack:        "ERR_NO_MEMORY_FOR_CALL_STACK",
	CodeRecursiveStackOverflow:      "ERR_RECURSIVE_STACK_OVERFLOW",
	CodeNotEnoughStackForParam:      "ERR_NOT_ENOUGH_STACK_FOR_PARAM",
	CodeNoMemoryForParamString:      "ERR_NO_MEMORY_FOR_PARAM_STRING",
	CodeNoMemoryForTempString:       "ERR_NO_MEMORY_FOR_TEMP_STRING",
	CodeNotInitializedString:        "ERR_NOT_INITIALIZED_STRING",
	CodeNotInitializedArrayString:   "ERR_NOT_INITIALIZED_ARRAYSTRING",
	CodeNoMemoryForArrayString:      "ERR_NO_MEMORY_FOR_ARRAYSTRING",
	CodeTooLongString:               "ERR_TOO_LONG_STRING",
	CodeRemainderFromZeroDivide:     "ERR_REMAINDER_FROM_ZERO_DIVIDE",
	CodeZeroDivide:                  "ERR_ZERO_DIVIDE",
	CodeUnknownCommand:              "ERR_UNKNOWN_COMMAND",
	CodeWrongJump:                   "ERR_WRONG_JUMP",
	CodeNotInitializedArray:         "ERR_NOT_INITIALIZED_ARRAY",
	CodeDLLCallsNotAllowed:          "ERR_DLL_CALLS_NOT_ALLOWED",
	CodeCannotLoadLibrary:           "ERR_CANNOT_LOAD_LIBRARY",
	CodeCannotCallFunction:          "ERR_CANNOT_CALL_FUNCTION",
	CodeExternalCallsNotAllowed:     "ERR_EXTERNAL_CALLS_NOT_ALLOWED",
	CodeNoMemoryForReturnedStr:      "ERR_NO_MEMORY_FOR_RETURNED_STR",
	CodeSystemBusy:                  "ERR_SYSTEM_BUSY",
	CodeDLLFuncCriticalError:        "ERR_DLLFUNC_CRITICALERROR",
	CodeInternalError:               "ERR_INTERNAL_ERROR",
	CodeOutOfMemory:                 "ERR_OUT_OF_MEMORY",
	CodeInvalidPointer:              "ERR_INVALID_POINTER",
	CodeFormatTooManyFormatters:     "ERR_FORMAT_TOO_MANY_FORMATTERS",
	CodeFormatTooManyParameters:     "ERR_FORMAT_TOO_MANY_PARAMETERS",
	CodeArrayInvalid:                "ERR_ARRAY_INVALID",
	CodeChartNoReply:                "ERR_CHART_NOREPLY",
	CodeInvalidFunctionParamsCnt:    "ERR_INVALID_FUNCTION_PARAMSCNT",
	CodeInvalidFunctionParamValue:   "ERR_INVALID_FUNCTION_PARAMVALUE",
	CodeStringFunctionInternal:      "ERR_STRING_FUNCTION_INTERNAL",
	CodeSomeArrayError:              "ERR_SOME_ARRAY_ERROR",
	CodeIncorrectSeriesArrayUsing:   "ERR_INCORRECT_SERIESARRAY_USING",
	CodeCustomIndicatorError:        "ERR_CUSTOM_INDICATOR_ERROR",
	CodeIncompatibleArrays:          "ERR_INCOMPATIBLE_ARRAYS",
	CodeGlobalVariablesProcessing:   "ERR_GLOBAL_VARIABLES_PROCESSING",
	CodeGlobalVariableNotFound:      "ERR_GLOBAL_VARIABLE_NOT_FOUND",
	CodeFuncNotAllowedInTesting:     "ERR_FUNC_NOT_ALLOWED_IN_TESTING",
	CodeFunctionNotConfirmed:        "ERR_FUNCTION_NOT_CONFIRMED",
	CodeSendMailError:               "ERR_SEND_MAIL_ERROR",
	CodeStringParameterExpected:     "ERR_STRING_PARAMETER_EXPECTED",
	CodeIntegerParameterExpected:    "ERR_INTEGER_PARAMETER_EXPECTED",
	CodeDoubleParameterExpected:     "ERR_DOUBLE_PARAMETER_EXPECTED",
	CodeArrayAsParameterExpected:    "ERR_ARRAY_AS_PARAMETER_EXPECTED",
	CodeHistoryWillUpdated:          "ERR_HISTORY_WILL_UPDATED",
	CodeTradeError:                  "ERR_TRADE_ERROR",
	CodeResourceNotFound:            "ERR_RESOURCE_NOT_FOUND",
	CodeResourceNotSupported:        "ERR_RESOURCE_NOT_SUPPORTED",
	CodeResourceDuplicated:          "ERR_RESOURCE_DUPLICATED",
	CodeIndicatorCannotInit:         "ERR_INDICATOR_CANNOT_INIT",
	CodeIndicatorCannotLoad:         "ERR_INDICATOR_CANNOT_LOAD",
	CodeNoHistoryData:               "ERR_NO_HISTORY_DATA",
	CodeNoMemoryForHistory:          "ERR_NO_MEMORY_FOR_HISTORY",
	CodeNoMemoryForIndicator:        "ERR_NO_MEMORY_FOR_INDICATOR",
	CodeEndOfFile:                   "ERR_END_OF_FILE",
	CodeSomeFileError:               "ERR_SOME_FILE_ERROR",
	CodeWrongFileName:               "ERR_WRONG_FILE_NAME",
	CodeTooManyOpenedFiles:          "ERR_TOO_MANY_OPENED_FILES",
	CodeCannotOpenFile:              "ERR_CANNOT_OPEN_FILE",
	CodeIncompatibleFileAccess:      "ERR_INCOMPATIBLE_FILEACCESS",
	CodeNoOrderSelected:             "ERR_NO_ORDER_SELECTED",
	CodeUnknownSymbol:               "ERR_UNKNOWN_SYMBOL",
	CodeInvalidPriceParam:           "ERR_INVALID_PRICE_PARAM",
	CodeInvalidTicket:               "ERR_INVALID_TICKET",
	CodeTradeNotAllowed:             "ERR_TRADE_NOT_ALLOWED",
	CodeLongsNotAllowed:             "ERR_LONGS_NOT_ALLOWED",
	CodeShortsNotAllowed:            "ERR_SHORTS_NOT_ALLOWED",
	CodeTradeExpertDisabledByServer: "ERR_TRADE_EXPERT_DISABLED_BY_SERVER",
	CodeObjectAlreadyExists:         "ERR_OBJECT_ALREADY_EXISTS",
	CodeUnknownObjectProperty:       "ERR_UNKNOWN_OBJECT_PROPERTY",
	CodeObjectDoesNotExist:          "ERR_OBJECT_DOES_NOT_EXIST",
	CodeUnknownObjectType:           "ERR_UNKNOWN_OBJECT_TYPE",
	CodeNoObjectName:                "ERR_NO_OBJECT_NAME",
	CodeObjectCoordinatesError:      "ERR_OBJECT_COORDINATES_ERROR",
	CodeNoSpecifiedSubwindow:        "ERR_NO_SPECIFIED_SUBWINDOW",
	CodeSomeObjectError:             "ERR_SOME_OBJECT_ERROR",
}

// FromCode resolves a raw error_code value. Values missing from the table
// resolve to CodeUnknown.
func FromCode(n int) Code {
	c := Code(n)
	if _, ok := codeNames[c]; ok {
		return c
	}
	return CodeUnknown
}

// Known reports whether c is in the code table.
func (c Code) Known() bool {
	_, ok := codeNames[c]
	return ok
}

// String returns the symbolic name, e.g. ERR_NO_CONNECTION.
func (c Code) String() string {
	if name, ok := codeNames[c]; ok {
		return name
	}
	if c == CodeUnknown {
		return "UNKNOWN"
	}
	return "UNKNOWN(" + strconv.Itoa(int(c)) + ")"
}

// Codes returns every code in the table, in no particular order.
func Codes() []Code {
	out := make([]Code, 0, len(codeNames))
	for c := range codeNames {
		out = append(out, c)
	}
	return out
}
