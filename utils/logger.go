package utils

import (
	"fmt"
	"log"
	"os"
	"time"
)

const logDir = "logs"

var (
	InfoLogger  *log.Logger
	ErrorLogger *log.Logger
)

// File log xoay theo ngày: logs/hotelhub-2006-01-02.log
func init() {
	if err := os.MkdirAll(logDir, 0755); err != nil {
		log.Fatal(err)
	}

	name := fmt.Sprintf("%s/hotelhub-%s.log", logDir, time.Now().Format("2006-01-02"))
	logFile, err := os.OpenFile(name, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
	if err != nil {
		log.Fatal(err)
	}

	InfoLogger = log.New(logFile, "INFO: ", log.Ldate|log.Ltime|log.Lshortfile)
	ErrorLogger = log.New(logFile, "ERROR: ", log.Ldate|log.Ltime|log.Lshortfile)
}

// LogInfo ghi vết nghiệp vụ (thanh toán, hoàn tiền) vào file log
func LogInfo(format string, v ...interface{}) {
	InfoLogger.Printf(format, v...)
}

// LogError ghi lỗi hệ thống vào file log, client chỉ nhận thông điệp chung
func LogError(format string, v ...interface{}) {
	ErrorLogger.Printf(format, v...)
}
