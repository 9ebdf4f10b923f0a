package main

import (
	"encoding/json"
	"fmt"
	"log"
	"os"

	"github.com/confluentinc/confluent-kafka-go/kafka"
	"github.com/filmsocial/filmrate/pkg/model"
)

func main() {
	fmt.Println("Creating a kafka producer")

	producer, err := kafka.NewProducer(&kafka.ConfigMap{
		"bootstrap.servers": "localhost:9092",
	})
	if err != nil {
		log.Fatalf("cannot create producer: %v", err)
	}
	defer producer.Close()

	go func() {
		for e := range producer.Events() {
			switch ev := e.(type) {
			case *kafka.Message:
				if ev.TopicPartition.Error != nil {
					log.Printf("delivery failed: %v", ev.TopicPartition)
				}
			}
		}
	}()

	const fileName = "marksdata.json"
	fmt.Println("Reading mark events from file " + fileName)

	markEvents, err := readMarkEvents(fileName)
	if err != nil {
		log.Fatalf("cannot read events: %v", err)
	}

	const topic = "marks"
	if err := produceMarkEvents(topic, producer, markEvents); err != nil {
		log.Fatalf("cannot produce events: %v", err)
	}

	remaining := producer.Flush(10_000)
	if remaining != 0 {
		log.Fatalf("still %d messages not delivered", remaining)
	}
	fmt.Println("all events produced")
}

func readMarkEvents(fileName string) ([]model.MarkEvent, error) {
	f, err := os.Open(fileName)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var marks []model.MarkEvent
	if err := json.NewDecoder(f).Decode(&marks); err != nil {
		return nil, err
	}
	return marks, nil
}

func produceMarkEvents(topic string, producer *kafka.Producer, events []model.MarkEvent) error {
	for _, me := range events {
		payload, err := json.Marshal(me)
		if err != nil {
			return err
		}
		if err := producer.Produce(&kafka.Message{
			TopicPartition: kafka.TopicPartition{Topic: &topic, Partition: kafka.PartitionAny},
			Value:          payload,
		}, nil); err != nil {
			return err
		}
	}
	return nil
}
