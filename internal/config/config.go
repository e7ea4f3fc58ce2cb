// v3
// internal/config/config.go
package config

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	TransportMQTT  = "mqtt"
	TransportKafka = "kafka"
)

type AppConfig struct {
	HTTPBind       string
	BookingAPIURL  string
	BookingToken   string
	LocationID     string
	Date           string
	PropertiesPath string
	UpdateInterval time.Duration

	Transport    string
	MQTTBroker   string
	MQTTUsername string
	MQTTPassword string
	MQTTClientID string
	KafkaBrokers []string
	TopicBase    string

	Rooms           []string
	WindowStart     string
	WindowEnd       string
	SlotMinutes     int
	OccupancyBias   map[string]float64
	TemperatureBias map[string]float64
}

// LoadEnvAndFiles builds the runtime config from the environment (a local
// .env is honoured when present) and the room properties file. The booking
// date is resolved here once; long-running processes keep simulating the
// same day until restarted.
func LoadEnvAndFiles() (*AppConfig, error) {
	_ = godotenv.Load()

	c := &AppConfig{
		HTTPBind:       getenv("HTTP_BIND", ":8086"),
		BookingAPIURL:  getenv("BOOKING_API_URL", "https://uclapi.com/libcal/space/bookings"),
		BookingToken:   getenv("BOOKING_TOKEN", ""),
		LocationID:     getenv("BOOKING_LOCATION_ID", "3438"),
		Date:           getenv("BOOKING_DATE", time.Now().Format("2006-01-02")),
		PropertiesPath: getenv("PROPERTIES_PATH", "./configs/studyspace.properties"),
		UpdateInterval: time.Duration(geti("UPDATE_INTERVAL_S", 60)) * time.Second,
		Transport:      getenv("TRANSPORT", TransportMQTT),
		MQTTBroker:     getenv("MQTT_BROKER", "tcp://mqtt.cetools.org:1884"),
		MQTTUsername:   getenv("MQTT_USERNAME", ""),
		MQTTPassword:   getenv("MQTT_PASSWORD", ""),
		MQTTClientID:   getenv("MQTT_CLIENT_ID", ""),
		KafkaBrokers:   split(getenv("KAFKA_BROKERS", ""), ","),
		TopicBase:      getenv("TOPIC_BASE", "student/CASA0019/studyspace"),
	}
	if c.Transport != TransportMQTT && c.Transport != TransportKafka {
		return nil, fmt.Errorf("TRANSPORT must be %q or %q, got %q", TransportMQTT, TransportKafka, c.Transport)
	}
	if c.Transport == TransportKafka && len(c.KafkaBrokers) == 0 {
		return nil, errors.New("KAFKA_BROKERS required for kafka transport")
	}
	if _, err := time.Parse("2006-01-02", c.Date); err != nil {
		return nil, fmt.Errorf("BOOKING_DATE %q: %w", c.Date, err)
	}
	if c.UpdateInterval <= 0 {
		return nil, errors.New("UPDATE_INTERVAL_S must be positive")
	}
	if err := c.loadProperties(c.PropertiesPath); err != nil {
		return nil, err
	}
	return c, nil
}

func (c *AppConfig) loadProperties(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()
	s := bufio.NewScanner(f)
	c.WindowStart = "09:00"
	c.WindowEnd = "21:00"
	c.SlotMinutes = 30
	c.OccupancyBias = map[string]float64{}
	c.TemperatureBias = map[string]float64{}
	var rooms []string
	for s.Scan() {
		line := strings.TrimSpace(s.Text())
		if line == "" || strings.HasPrefix(line, "#") || strings.HasPrefix(line, "//") {
			continue
		}
		k, v, ok := strings.Cut(line, "=")
		if !ok {
			continue
		}
		k = strings.TrimSpace(k)
		v = strings.TrimSpace(v)
		switch k {
		case "rooms":
			rooms = split(v, ",")
		case "window.start":
			c.WindowStart = v
		case "window.end":
			c.WindowEnd = v
		case "slot.minutes":
			if i, err := strconv.Atoi(v); err == nil {
				c.SlotMinutes = i
			}
		case "occupancy.bias":
			if f, err := strconv.ParseFloat(v, 64); err == nil {
				for _, r := range rooms {
					c.OccupancyBias[r] = f
				}
			}
		case "temperature.bias":
			if f, err := strconv.ParseFloat(v, 64); err == nil {
				for _, r := range rooms {
					c.TemperatureBias[r] = f
				}
			}
		default:
			if strings.HasPrefix(k, "occupancy.bias.") {
				r := strings.TrimPrefix(k, "occupancy.bias.")
				if f, err := strconv.ParseFloat(v, 64); err == nil {
					c.OccupancyBias[r] = f
				}
			} else if strings.HasPrefix(k, "temperature.bias.") {
				r := strings.TrimPrefix(k, "temperature.bias.")
				if f, err := strconv.ParseFloat(v, 64); err == nil {
					c.TemperatureBias[r] = f
				}
			}
		}
	}
	if err := s.Err(); err != nil {
		return err
	}
	if len(rooms) == 0 {
		return errors.New("rooms must be set in properties")
	}
	start, err := time.Parse("15:04", c.WindowStart)
	if err != nil {
		return fmt.Errorf("window.start %q: %w", c.WindowStart, err)
	}
	end, err := time.Parse("15:04", c.WindowEnd)
	if err != nil {
		return fmt.Errorf("window.end %q: %w", c.WindowEnd, err)
	}
	if !start.Before(end) {
		return fmt.Errorf("window.start %s must be before window.end %s", c.WindowStart, c.WindowEnd)
	}
	if c.SlotMinutes <= 0 {
		return fmt.Errorf("slot.minutes must be positive, got %d", c.SlotMinutes)
	}
	c.Rooms = rooms
	return nil
}

func getenv(k, d string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return d
}
func geti(k string, d int) int {
	if v := os.Getenv(k); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return d
}
func split(s, sep string) []string {
	if s == "" {
		return nil
	}
	p := strings.Split(s, sep)
	out := make([]string, 0, len(p))
	for _, x := range p {
		x = strings.TrimSpace(x)
		if x != "" {
			out = append(out, x)
		}
	}
	return out
}
