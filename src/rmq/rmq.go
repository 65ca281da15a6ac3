package rmq

import (
	"time"

	"github.com/daids/gif2esp/src/global"
	"github.com/hashicorp/go-multierror"
	"github.com/sirupsen/logrus"
	"github.com/streadway/amqp"
)

type RmqInstance struct {
	rmq   *amqp.Connection
	chRmq *amqp.Channel
}

func New(ctx global.Context) global.Rmq {
	rmq, err := amqp.Dial(ctx.Config().Rmq.ServerURL)
	if err != nil {
		logrus.Fatal("failed to connect to rmq: ", err)
	}

	chRmq, err := rmq.Channel()
	if err != nil {
		logrus.Fatal("failed to connect to rmq: ", err)
	}

	for _, queue := range []string{
		ctx.Config().Rmq.JobQueueName,
		ctx.Config().Rmq.ResultQueueName,
		ctx.Config().Rmq.UpdateQueueName,
	} {
		_, err = chRmq.QueueDeclare(
			queue, // queue name
			true,  // durable
			false, // auto delete
			false, // exclusive
			false, // no wait
			nil,   // arguments
		)
		if err != nil {
			logrus.Fatal("failed to connect to rmq: ", err)
		}
	}

	return &RmqInstance{
		rmq:   rmq,
		chRmq: chRmq,
	}
}

func (r *RmqInstance) Subscribe(queue string) (<-chan amqp.Delivery, error) {
	return r.chRmq.Consume(
		queue, // queue name
		"",    // consumer
		false, // auto-ack
		false, // exclusive
		false, // no local
		false, // no wait
		nil,   // arguments
	)
}

func (r *RmqInstance) Publish(queue string, contentType string, deliveryMode uint8, msg []byte) error {
	return r.chRmq.Publish(
		"",    // exchange
		queue, // queue name
		false, // mandatory
		false, // immediate
		amqp.Publishing{
			ContentType:  contentType,
			DeliveryMode: deliveryMode,
			Timestamp:    time.Now(),
			Body:         msg,
			Priority:     0,
		}, // message to publish
	)
}

func (r *RmqInstance) Shutdown() {
	var err *multierror.Error
	err = multierror.Append(err, r.chRmq.Close())
	err = multierror.Append(err, r.rmq.Close())
	if err.ErrorOrNil() != nil {
		logrus.Warn("rmq shutdown: ", err)
	}
}
