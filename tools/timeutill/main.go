package main

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// Дефолтный масштаб времени симуляции (сим-секунд на реальную секунду),
// совпадает с internal/config.Default
const defaultTimeScale = 60.0

func main() {
	if len(os.Args) < 2 {
		printHelp()
		return
	}

	switch os.Args[1] {
	case "now":
		fmt.Println(time.Now().Unix())
	case "format":
		if len(os.Args) < 3 {
			fmt.Println("Usage: timeutil format <unix_timestamp>")
			return
		}
		ts, err := strconv.ParseInt(os.Args[2], 10, 64)
		if err != nil {
			fmt.Printf("Invalid timestamp: %v\n", err)
			return
		}
		fmt.Println(time.Unix(ts, 0).Format(time.RFC3339))
	case "parse":
		if len(os.Args) < 3 {
			fmt.Println("Usage: timeutil parse <date_string>")
			return
		}
		t, err := time.Parse("2006-01-02 15:04:05", os.Args[2])
		if err != nil {
			fmt.Printf("Invalid date: %v\n", err)
			return
		}
		fmt.Println(t.Unix())
	case "add":
		if len(os.Args) < 4 {
			fmt.Println("Usage: timeutil add <unix_timestamp> <seconds>")
			return
		}
		ts, err1 := strconv.ParseInt(os.Args[2], 10, 64)
		sec, err2 := strconv.ParseInt(os.Args[3], 10, 64)
		if err1 != nil || err2 != nil {
			fmt.Println("Invalid arguments")
			return
		}
		fmt.Println(ts + sec)
	case "diff":
		if len(os.Args) < 4 {
			fmt.Println("Usage: timeutil diff <ts1> <ts2>")
			return
		}
		a, err1 := strconv.ParseInt(os.Args[2], 10, 64)
		b, err2 := strconv.ParseInt(os.Args[3], 10, 64)
		if err1 != nil || err2 != nil {
			fmt.Println("Invalid arguments")
			return
		}
		fmt.Println(a - b)
	case "sim":
		// Сколько сим-времени пройдет за указанное реальное время.
		// Удобно прикидывать длину стадий при настройке time_scale.
		if len(os.Args) < 3 {
			fmt.Println("Usage: timeutil sim <real_seconds> [time_scale]")
			return
		}
		real, err := strconv.ParseFloat(os.Args[2], 64)
		if err != nil {
			fmt.Printf("Invalid seconds: %v\n", err)
			return
		}
		scale := defaultTimeScale
		if len(os.Args) > 3 {
			if s, err := strconv.ParseFloat(os.Args[3], 64); err == nil && s > 0 {
				scale = s
			}
		}
		simSec := real * scale
		fmt.Printf("%.0f sim-seconds (%.1f sim-hours, %.2f sim-days)\n",
			simSec, simSec/3600, simSec/86400)
	default:
		printHelp()
	}
}

func printHelp() {
	fmt.Println(`Time Utility - конвертация времени для настройки симуляции
Commands:
  now                        - текущее время в Unix формате
  format <timestamp>         - преобразовать Unix время в читаемый формат
  parse <date_string>        - преобразовать дату в Unix время (формат: YYYY-MM-DD HH:MM:SS)
  add <timestamp> <sec>      - добавить секунды к времени
  diff <ts1> <ts2>           - разница между двумя временами в секундах
  sim <real_sec> [scale]     - сим-время за реальный интервал (дефолтный scale 60)`)
}
